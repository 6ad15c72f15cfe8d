package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/external/abstractapi"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/external/resend"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/config"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/db"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/repository"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/session"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/token"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Fatal(err)
	}
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	var emailValidator services.EmailValidator
	if cfg.UseEmailReputation {
		emailValidator, err = abstractapi.NewAbstractReputationValidator(cfg.AbstractAPIKey)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	var mailer services.EmailSender
	if cfg.ResendAPIKey != "" {
		mailer, err = resend.NewResendMailer(cfg.ResendAPIKey, "AfriLearnHub<noreply@afrilearnhub.com>")
		if err != nil {
			log.Fatal(err)
		}
	} else {
		slog.Warn("RESEND_API_KEY not set, outbound email disabled")
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)
	sessions := session.NewPostgresStore(pool)

	// ======================
	// SERVICES
	// ======================
	tokens := token.NewIssuer(cfg.JWTSecret)
	authSvc := services.NewAuthService(userRepo, tokens, mailer, emailValidator, cfg.AppURL)
	courseSvc := services.NewCourseService(courseRepo)
	enrollmentSvc := services.NewEnrollmentService(enrollmentRepo, courseRepo)
	assignmentSvc := services.NewAssignmentService(assignmentRepo, courseRepo)
	submissionSvc := services.NewSubmissionService(submissionRepo, assignmentRepo, enrollmentRepo, courseRepo)
	gradeSvc := services.NewGradeService(gradeRepo, submissionRepo, assignmentRepo, courseRepo)
	announcementSvc := services.NewAnnouncementService(announcementRepo, courseRepo)
	userSvc := services.NewUserService(userRepo)
	attachSvc := services.NewAttachmentService(cfg)

	// expired sessions pile up otherwise
	go func() {
		for range time.Tick(time.Hour) {
			if err := sessions.PurgeExpired(ctx); err != nil {
				slog.Error("purge expired sessions", "err", err)
			}
		}
	}()

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")
	api.Use(middleware.SessionAuth(sessions, userRepo))

	// ======================
	// ROUTES
	// ======================
	registerAuthRoutes(api, authSvc, sessions, cfg)
	registerCourseRoutes(api, courseSvc)
	registerEnrollmentRoutes(api, enrollmentSvc)
	registerAssignmentRoutes(api, assignmentSvc)
	registerSubmissionRoutes(api, submissionSvc, gradeSvc, attachSvc)
	registerAnnouncementRoutes(api, announcementSvc)
	registerUserRoutes(api, userSvc)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
