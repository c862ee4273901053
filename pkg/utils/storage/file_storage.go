package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/Semavi7/who-estate-backend-different/pkg/config"
	imageutil "github.com/Semavi7/who-estate-backend-different/pkg/utils/image"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/validation"
)

type Service struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// Global storage servisi, main.go InitStorage ile kurar
var GlobalService *Service

func InitStorage(cfg config.StorageConfig) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// R2 gibi S3-uyumlu servisler
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	GlobalService = &Service{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
	return nil
}

// ObjectKey uuid + slug'lanmış dosya adından URL-safe bir key üretir
func ObjectKey(kind, filename string) string {
	ext := filepath.Ext(strings.ToLower(filename))
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("uploads/%s/%s-%s%s", kind, uuid.New().String(), slug.Make(name), ext)
}

// UploadImage resmi doğrular, işler (istenirse filigran basar) ve yükler.
// Dönen değer public URL'dir.
func (s *Service) UploadImage(ctx context.Context, file *multipart.FileHeader, kind string, addWatermark bool) (string, error) {
	if err := validation.ValidateImage(file); err != nil {
		return "", err
	}

	buf, contentType, err := imageutil.ProcessImage(file, addWatermark)
	if err != nil {
		return "", err
	}

	key := ObjectKey(kind, file.Filename)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload to storage: %v", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

// UploadPropertyImages ilan fotoğraflarını filigranlı yükler
func (s *Service) UploadPropertyImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if err := validation.ValidateImages(files); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.UploadImage(ctx, file, "properties", true)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// UploadUserImage avatarları filigransız yükler
func (s *Service) UploadUserImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.UploadImage(ctx, file, "users", false)
}

// keyFromURL public URL'den obje key'ini çıkarır
func (s *Service) keyFromURL(imageURL string) string {
	return strings.TrimPrefix(imageURL, s.publicURL+"/")
}

// DeleteImage URL'den key'i çıkarıp objeyi siler
func (s *Service) DeleteImage(ctx context.Context, imageURL string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.keyFromURL(imageURL)),
	})
	return err
}
