package services

import (
	"context"
	"sync"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/repository"
)

// fakeUserStore is an in-memory UserLister. Lookups return copies so that
// sanitizing a returned user cannot blank the stored digest.
type fakeUserStore struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: map[int64]*model.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	cp := *u
	cp.ID = f.seq
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) find(match func(*model.User) bool) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.ID == id })
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.Username == username })
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.Email == email })
}

func (f *fakeUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserStore) SetVerified(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Verified = true
	return nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, in *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[in.ID]
	if !ok {
		return repository.ErrNotFound
	}
	u.FirstName, u.LastName = in.FirstName, in.LastName
	u.Bio, u.Institution = in.Bio, in.Institution
	return nil
}

func (f *fakeUserStore) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.User{}
	for _, u := range f.byID {
		cp := *u
		cp.PasswordHash = ""
		list = append(list, cp)
	}
	return list, nil
}

// fakeCourseStore holds courses keyed by id.
type fakeCourseStore struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*model.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{byID: map[int64]*model.Course{}}
}

func (f *fakeCourseStore) Create(ctx context.Context, c *model.Course) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	cp := *c
	cp.CourseID = f.seq
	f.byID[cp.CourseID] = &cp
	return cp.CourseID, nil
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourseStore) List(ctx context.Context, limit, offset int) ([]model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Course{}
	for _, c := range f.byID {
		list = append(list, *c)
	}
	return list, nil
}

func (f *fakeCourseStore) ListByInstructor(ctx context.Context, instructorID int64) ([]model.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Course{}
	for _, c := range f.byID {
		if c.InstructorID == instructorID {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (f *fakeCourseStore) Update(ctx context.Context, c *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.byID[c.CourseID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Title, existing.Code = c.Title, c.Code
	existing.Description, existing.Semester = c.Description, c.Semester
	return nil
}

func (f *fakeCourseStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeAssignmentStore holds assignments keyed by id.
type fakeAssignmentStore struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*model.Assignment
}

func newFakeAssignmentStore() *fakeAssignmentStore {
	return &fakeAssignmentStore{byID: map[int64]*model.Assignment{}}
}

func (f *fakeAssignmentStore) Create(ctx context.Context, a *model.Assignment) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	cp := *a
	cp.AssignmentID = f.seq
	f.byID[cp.AssignmentID] = &cp
	return cp.AssignmentID, nil
}

func (f *fakeAssignmentStore) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAssignmentStore) ListByCourse(ctx context.Context, courseID int64) ([]model.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Assignment{}
	for _, a := range f.byID {
		if a.CourseID == courseID {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (f *fakeAssignmentStore) Update(ctx context.Context, a *model.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.byID[a.AssignmentID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Title, existing.Description = a.Title, a.Description
	existing.DueDate, existing.MaxPoints = a.DueDate, a.MaxPoints
	return nil
}

func (f *fakeAssignmentStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeEnrollmentStore enforces the one-enrollment-per-course rule.
type fakeEnrollmentStore struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*model.Enrollment
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{byID: map[int64]*model.Enrollment{}}
}

func (f *fakeEnrollmentStore) Create(ctx context.Context, courseID, studentID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.byID {
		if e.CourseID == courseID && e.StudentID == studentID {
			return 0, repository.ErrDuplicate
		}
	}
	f.seq++
	f.byID[f.seq] = &model.Enrollment{EnrollmentID: f.seq, CourseID: courseID, StudentID: studentID}
	return f.seq, nil
}

func (f *fakeEnrollmentStore) GetByID(ctx context.Context, id int64) (*model.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEnrollmentStore) ListByStudent(ctx context.Context, studentID int64) ([]model.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Enrollment{}
	for _, e := range f.byID {
		if e.StudentID == studentID {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (f *fakeEnrollmentStore) ListByCourse(ctx context.Context, courseID int64) ([]model.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Enrollment{}
	for _, e := range f.byID {
		if e.CourseID == courseID {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (f *fakeEnrollmentStore) Enrolled(ctx context.Context, courseID, studentID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.byID {
		if e.CourseID == courseID && e.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeSubmissionStore upserts by (assignment, student).
type fakeSubmissionStore struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*model.Submission
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{byID: map[int64]*model.Submission{}}
}

func (f *fakeSubmissionStore) Upsert(ctx context.Context, s *model.Submission) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.AssignmentID == s.AssignmentID && existing.StudentID == s.StudentID {
			existing.Content, existing.AttachmentKey = s.Content, s.AttachmentKey
			return existing.SubmissionID, nil
		}
	}
	f.seq++
	cp := *s
	cp.SubmissionID = f.seq
	f.byID[cp.SubmissionID] = &cp
	return cp.SubmissionID, nil
}

func (f *fakeSubmissionStore) GetByID(ctx context.Context, id int64) (*model.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSubmissionStore) ListByAssignment(ctx context.Context, assignmentID int64) ([]model.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Submission{}
	for _, s := range f.byID {
		if s.AssignmentID == assignmentID {
			list = append(list, *s)
		}
	}
	return list, nil
}

// fakeGradeStore upserts by submission id.
type fakeGradeStore struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]*model.Grade
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{byID: map[int64]*model.Grade{}}
}

func (f *fakeGradeStore) Upsert(ctx context.Context, g *model.Grade) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.SubmissionID == g.SubmissionID {
			existing.GraderID, existing.Points, existing.Feedback = g.GraderID, g.Points, g.Feedback
			return existing.GradeID, nil
		}
	}
	f.seq++
	cp := *g
	cp.GradeID = f.seq
	f.byID[cp.GradeID] = &cp
	return cp.GradeID, nil
}

func (f *fakeGradeStore) GetBySubmission(ctx context.Context, submissionID int64) (*model.Grade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.byID {
		if g.SubmissionID == submissionID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeGradeStore) ListByStudent(ctx context.Context, studentID int64) ([]model.Grade, error) {
	return []model.Grade{}, nil
}

// fakeMailer records sent mail and optionally fails.
type fakeMailer struct {
	mu            sync.Mutex
	verifyURLs    []string
	resetURLs     []string
	verifyTargets []string
	resetTargets  []string
	err           error
}

func (f *fakeMailer) SendVerificationEmail(ctx context.Context, toEmail, verifyURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.verifyTargets = append(f.verifyTargets, toEmail)
	f.verifyURLs = append(f.verifyURLs, verifyURL)
	return nil
}

func (f *fakeMailer) SendPasswordResetEmail(ctx context.Context, toEmail, resetURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.resetTargets = append(f.resetTargets, toEmail)
	f.resetURLs = append(f.resetURLs, resetURL)
	return nil
}
