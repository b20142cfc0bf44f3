package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"daily_challenge_backend/internal/config"
	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider archives export files.
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

// LocalStorageProvider writes archives under the configured directory.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return "/exports/" + filename, nil
}

// MinioStorageProvider archives to an object store bucket.
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return "/" + p.Config.MinioBucket + "/" + filename, nil
}

// ExportService serializes the user collection, passwords included, exactly
// as stored. The export doubles as the platform's backup format.
type ExportService struct {
	UserRepo *repository.UserRepository
	Provider StorageProvider

	now func() time.Time
}

func NewExportService(userRepo *repository.UserRepository, cfg *config.Config) *ExportService {
	var provider StorageProvider
	if cfg.Storage.Type == "minio" {
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err == nil {
			provider = p
		}
	}
	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &ExportService{UserRepo: userRepo, Provider: provider, now: time.Now}
}

// ExportUsers returns the dated filename and JSON body, archiving a copy
// through the storage provider. Archive failures are logged, not fatal: the
// download is the primary artifact.
func (s *ExportService) ExportUsers(ctx context.Context) (string, []byte, error) {
	users, err := s.UserRepo.All(ctx)
	if err != nil {
		return "", nil, err
	}

	body, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("users_export_%s.json", s.now().Format("2006-01-02"))
	if _, err := s.Provider.Upload(ctx, filename, bytes.NewReader(body), int64(len(body)), "application/json"); err != nil {
		logger.Log.Warn("failed to archive user export", zap.String("file", filename), zap.Error(err))
	}
	return filename, body, nil
}
