package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "threadboard/internal/server/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(client *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return client.PutObject(ctx, in)
	}
)

// AvatarService writes uploaded avatar images to S3-compatible object
// storage (MinIO in development) and returns the public URL to record on
// the account.
type AvatarService struct {
	config *sc.Config
}

func NewAvatarService(cfg *sc.Config) *AvatarService {
	return &AvatarService{config: cfg}
}

func avatarStorageKey(userID int64, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" || len(ext) > 10 {
		ext = ".png"
	}
	return fmt.Sprintf("avatars/u%d/%s%s", userID, uuid.New(), ext)
}

func (s *AvatarService) getClient() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Store uploads the avatar bytes and returns the URL where the object is
// served. The key embeds a fresh UUID, so re-uploads never collide.
func (s *AvatarService) Store(ctx context.Context, userID int64, filename, contentType string, data []byte) (string, error) {
	client, err := s.getClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := avatarStorageKey(userID, filename)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}); err != nil {
		return "", fmt.Errorf("error uploading avatar: %w", err)
	}

	return strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + bucket + "/" + key, nil
}
