package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"beresinBack/internal/models"
)

// Storage persists uploaded service images. Driver "local" writes under
// UploadDir and serves them back via the /uploads/ static route; driver "s3"
// pushes to an S3-compatible bucket and stores the public URL.
type Storage struct {
	Driver    string
	UploadDir string
}

func NewStorageFromEnv() *Storage {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "local"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads/services"
	}
	return &Storage{Driver: driver, UploadDir: uploadDir}
}

// SaveServiceImages stores every uploaded file against the owning service id
// and returns the image rows to persist. Filenames are regenerated with a
// UUID so client-chosen names never collide.
func (s *Storage) SaveServiceImages(files []*multipart.FileHeader, serviceID int) ([]models.Image, error) {
	var images []models.Image

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file %q: %w", fileHeader.Filename, err)
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file %q: %w", fileHeader.Filename, err)
		}

		filename := fmt.Sprintf("%d_%s%s", serviceID, uuid.New().String(), filepath.Ext(fileHeader.Filename))

		var path string
		if s.Driver == "s3" {
			path, err = UploadFileToS3(data, filename, "services")
		} else {
			path, err = s.saveLocal(data, filename)
		}
		if err != nil {
			return nil, err
		}

		images = append(images, models.Image{ServiceID: serviceID, Image: path})
	}

	return images, nil
}

func (s *Storage) saveLocal(data []byte, filename string) (string, error) {
	if _, err := os.Stat(s.UploadDir); os.IsNotExist(err) {
		if err := os.MkdirAll(s.UploadDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create upload directory: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(s.UploadDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return "/uploads/services/" + filename, nil
}

func getS3Client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(envOr("S3_REGION", "us-east-1")),
		Endpoint: aws.String(os.Getenv("S3_ENDPOINT")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), "",
		),
	}))
	return s3.New(sess)
}

// UploadFileToS3 uploads a file to the configured bucket and returns its
// public URL.
func UploadFileToS3(file []byte, fileName string, folder string) (string, error) {
	bucket := os.Getenv("S3_BUCKET")
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	s3Client := getS3Client()

	_, err := s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(http.DetectContentType(file)),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", envOr("S3_PUBLIC_URL", "https://"+bucket+".object.pscloud.io"), folder, fileName), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
