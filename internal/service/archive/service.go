package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/domain"
)

// Service keeps a private object-storage copy of every exported document.
// Archiving is best-effort: the export path never fails because of it.
type Service interface {
	Store(ctx context.Context, proposalID int64, result *domain.ExportResult) (string, error)
	Enabled() bool
}

type service struct {
	client *minio.Client
	cfg    *config.Config
}

func NewService(client *minio.Client, cfg *config.Config) Service {
	return &service{client: client, cfg: cfg}
}

func (s *service) Enabled() bool {
	return s.client != nil && s.cfg.ArchiveEnabled
}

func (s *service) Store(ctx context.Context, proposalID int64, result *domain.ExportResult) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	objectName := fmt.Sprintf("exports/%s/%d/%s_%s",
		time.Now().Format("2006/01"), proposalID, uuid.New().String()[:8], result.Filename)

	_, err := s.client.PutObject(ctx, s.cfg.MinIOBucket, objectName,
		bytes.NewReader(result.Buffer), int64(len(result.Buffer)),
		minio.PutObjectOptions{ContentType: result.ContentType})
	if err != nil {
		return "", fmt.Errorf("failed to archive export: %w", err)
	}
	return objectName, nil
}
