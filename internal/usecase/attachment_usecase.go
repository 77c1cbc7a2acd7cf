package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"vet-appointments-service/config"
	"vet-appointments-service/internal/converter"
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/delivery/http/middleware"
	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrNoFilesProvided    = errors.New("at least one file is required")
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrInvalidCategory    = errors.New("invalid attachment category")
)

type AttachmentUsecase interface {
	Upload(ctx context.Context, recordID int, files []*multipart.FileHeader, category, description string) (*dto.AttachmentListResponse, error)
	ListByRecord(ctx context.Context, recordID int) (*dto.AttachmentListResponse, error)
	Delete(ctx context.Context, attachmentID int) error

	// ResolveDownload returns the absolute file path plus the original name
	// and mime type for an active attachment whose backing file exists.
	ResolveDownload(ctx context.Context, attachmentID int) (path, fileName, mimeType string, err error)
}

type attachmentUsecase struct {
	log            *logrus.Logger
	attachmentRepo repository.MedicalAttachmentRepository
	recordRepo     repository.MedicalRecordRepository
	uploadCfg      config.UploadConfig
}

func NewAttachmentUsecase(
	log *logrus.Logger,
	attachmentRepo repository.MedicalAttachmentRepository,
	recordRepo repository.MedicalRecordRepository,
	uploadCfg config.UploadConfig,
) AttachmentUsecase {
	return &attachmentUsecase{
		log:            log,
		attachmentRepo: attachmentRepo,
		recordRepo:     recordRepo,
		uploadCfg:      uploadCfg,
	}
}

// Upload stores each file on disk under a uuid name and creates one
// attachment row per file against the record.
func (u *attachmentUsecase) Upload(ctx context.Context, recordID int, files []*multipart.FileHeader, category, description string) (*dto.AttachmentListResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if len(files) == 0 {
		return nil, ErrNoFilesProvided
	}

	if category == "" {
		category = string(entity.AttachmentOther)
	}
	if !entity.AttachmentCategory(category).IsValid() {
		return nil, ErrInvalidCategory
	}

	record, err := u.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find record %d: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	for _, file := range files {
		if file.Size > u.uploadCfg.MaxFileSize {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, file.Filename)
		}
	}

	if err := os.MkdirAll(u.uploadCfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload dir: %w", err)
	}

	attachments := make([]entity.MedicalAttachment, 0, len(files))
	stored := make([]string, 0, len(files))
	for _, file := range files {
		storedName := uuid.NewString() + filepath.Ext(file.Filename)
		if err := u.saveFile(file, storedName); err != nil {
			u.log.Warnf("Failed to store %s: %+v", file.Filename, err)
			u.removeStored(stored)
			return nil, err
		}
		stored = append(stored, storedName)

		attachments = append(attachments, entity.MedicalAttachment{
			RecordID:    recordID,
			FileName:    file.Filename,
			Category:    entity.AttachmentCategory(category),
			StoragePath: storedName,
			FileSize:    file.Size,
			MimeType:    file.Header.Get("Content-Type"),
			Description: description,
			UploadedBy:  identity.ID,
			IsActive:    true,
		})
	}

	if err := u.attachmentRepo.CreateBatch(ctx, attachments); err != nil {
		u.log.Warnf("Failed to insert attachments for record %d: %+v", recordID, err)
		u.removeStored(stored)
		return nil, err
	}

	u.log.Infof("Attachments uploaded: record=%d, count=%d", recordID, len(attachments))
	return &dto.AttachmentListResponse{
		Attachments: converter.AttachmentsToResponses(attachments),
		Total:       len(attachments),
	}, nil
}

func (u *attachmentUsecase) ListByRecord(ctx context.Context, recordID int) (*dto.AttachmentListResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find record %d: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	attachments, err := u.attachmentRepo.FindByRecordID(ctx, recordID)
	if err != nil {
		u.log.Warnf("Failed to list attachments for record %d: %+v", recordID, err)
		return nil, err
	}

	return &dto.AttachmentListResponse{
		Attachments: converter.AttachmentsToResponses(attachments),
		Total:       len(attachments),
	}, nil
}

// Delete soft-deletes the attachment row. The file stays on disk.
func (u *attachmentUsecase) Delete(ctx context.Context, attachmentID int) error {
	attachment, err := u.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		u.log.Warnf("Failed to find attachment %d: %+v", attachmentID, err)
		return err
	}
	if attachment == nil || !attachment.IsActive {
		return ErrAttachmentNotFound
	}

	attachment.IsActive = false
	if err := u.attachmentRepo.Update(ctx, attachment); err != nil {
		u.log.Warnf("Failed to delete attachment %d: %+v", attachmentID, err)
		return err
	}

	u.log.Infof("Attachment deleted: id=%d", attachmentID)
	return nil
}

func (u *attachmentUsecase) ResolveDownload(ctx context.Context, attachmentID int) (string, string, string, error) {
	attachment, err := u.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		u.log.Warnf("Failed to find attachment %d: %+v", attachmentID, err)
		return "", "", "", err
	}
	if attachment == nil || !attachment.IsActive {
		return "", "", "", ErrAttachmentNotFound
	}

	path := filepath.Join(u.uploadCfg.Dir, attachment.StoragePath)
	if _, err := os.Stat(path); err != nil {
		u.log.Warnf("Attachment %d has no backing file at %s: %+v", attachmentID, path, err)
		return "", "", "", ErrAttachmentNotFound
	}

	return path, attachment.FileName, attachment.MimeType, nil
}

func (u *attachmentUsecase) saveFile(file *multipart.FileHeader, storedName string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.uploadCfg.Dir, storedName))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// removeStored cleans up files written before a failed upload.
func (u *attachmentUsecase) removeStored(storedNames []string) {
	for _, name := range storedNames {
		if err := os.Remove(filepath.Join(u.uploadCfg.Dir, name)); err != nil {
			u.log.Warnf("Failed to remove orphaned upload %s: %+v", name, err)
		}
	}
}
