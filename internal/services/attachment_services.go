package services

import (
	"context"
	"fmt"
	"time"

	appcfg "github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignTTL = 15 * time.Minute

// AttachmentService hands out short-lived presigned URLs so submission
// files go straight to object storage without passing through the API.
type AttachmentService struct {
	cfg *appcfg.Config
}

func NewAttachmentService(cfg *appcfg.Config) *AttachmentService {
	return &AttachmentService{cfg: cfg}
}

func storageKey(userID int64) string {
	d := time.Now()
	return fmt.Sprintf("submissions/%d/%d/%02d/%v", userID, d.Year(), d.Month(), uuid.New())
}

func (s *AttachmentService) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.S3AccessKey,
			s.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.S3BaseEndpoint)
	})
	return s3.NewPresignClient(client), nil
}

// PresignUpload returns the generated object key and a presigned PUT URL.
// The key is what the client reports back on the submission itself.
func (s *AttachmentService) PresignUpload(ctx context.Context, requester int64) (key, url string, err error) {
	presign, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}
	bucket := s.cfg.S3Bucket
	key = storageKey(requester)
	req, err := presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", "", err
	}
	return key, req.URL, nil
}

// PresignDownload returns a presigned GET URL for a stored attachment.
func (s *AttachmentService) PresignDownload(ctx context.Context, key string) (string, error) {
	presign, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}
	bucket := s.cfg.S3Bucket
	req, err := presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
