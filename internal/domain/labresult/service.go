package labresult

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"diet-profile-go/pkg/logger"
)

const (
	pdfExtension   = ".pdf"
	pdfContentType = "application/pdf"
)

var pdfSignature = []byte("%PDF-")

type Service struct {
	repo     Repository
	blobs    BlobStore
	maxBytes int64
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, blobs BlobStore, maxBytes int64, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, blobs: blobs, maxBytes: maxBytes, log: log, now: time.Now}
}

func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// Upload validates the document, stores it and records it for the user.
// Nothing is written when validation fails.
func (s *Service) Upload(ctx context.Context, userID int64, upload Upload) (*LabResult, error) {
	filename := CleanFilename(upload.Filename)
	if !strings.EqualFold(filepath.Ext(filename), pdfExtension) {
		return nil, ErrNotPDF
	}
	if upload.Size <= 0 || upload.Content == nil {
		return nil, ErrEmptyFile
	}
	if s.maxBytes > 0 && upload.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	content := bufio.NewReaderSize(upload.Content, 512)
	head, err := content.Peek(len(pdfSignature))
	if err != nil || !bytes.Equal(head, pdfSignature) {
		return nil, ErrNotPDF
	}

	key := StorageKey(userID, s.now(), filename)
	if err := s.blobs.Save(ctx, key, content, upload.Size, pdfContentType); err != nil {
		return nil, fmt.Errorf("%w: save blob: %w", ErrPersistence, err)
	}

	result := LabResult{
		UserID:     userID,
		Filename:   filename,
		StorageKey: key,
	}
	if err := s.repo.Create(ctx, &result); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.log.InternalError("lab_results.upload: orphaned blob cleanup failed", delErr, "user_id", userID, "key", key)
		}
		return nil, fmt.Errorf("%w: record: %w", ErrPersistence, err)
	}

	return &result, nil
}

func (s *Service) Latest(ctx context.Context, userID int64) (*LabResult, error) {
	return s.repo.Latest(ctx, userID)
}

// CleanFilename strips any directory components a client may have sent.
func CleanFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// StorageKey names the blob for one upload. The timestamp keeps a re-upload
// of the same filename from replacing a blob an older record points at.
func StorageKey(userID int64, uploadedAt time.Time, filename string) string {
	return fmt.Sprintf("user_%d_%d_%s", userID, uploadedAt.UnixNano(), filename)
}
