package usecase

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"vet-appointments-service/config"
	"vet-appointments-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadConfig(t *testing.T) config.UploadConfig {
	return config.UploadConfig{
		Dir:         t.TempDir(),
		MaxFileSize: 1 << 20,
	}
}

// fileHeaders builds real multipart headers the way an HTTP upload would.
func fileHeaders(t *testing.T, files map[string]string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

func recordExists() *fakeMedicalRecordRepo {
	return &fakeMedicalRecordRepo{
		FindByIDFunc: func(_ context.Context, id int) (*entity.MedicalRecord, error) {
			return &entity.MedicalRecord{ID: id, AppointmentID: 44}, nil
		},
	}
}

func TestUploadAttachments(t *testing.T) {
	cfg := uploadConfig(t)
	var saved []entity.MedicalAttachment
	attachmentRepo := &fakeAttachmentRepo{
		CreateBatchFunc: func(_ context.Context, attachments []entity.MedicalAttachment) error {
			saved = attachments
			return nil
		},
	}
	uc := NewAttachmentUsecase(testLogger(), attachmentRepo, recordExists(), cfg)

	files := fileHeaders(t, map[string]string{"xray.png": "fake image bytes"})
	got, err := uc.Upload(vetContext(), 9, files, "radiography", "left front leg")
	require.NoError(t, err)

	assert.Equal(t, 1, got.Total)
	require.Len(t, saved, 1)
	assert.Equal(t, 9, saved[0].RecordID)
	assert.Equal(t, "xray.png", saved[0].FileName)
	assert.Equal(t, entity.AttachmentRadiography, saved[0].Category)
	assert.Equal(t, ".png", filepath.Ext(saved[0].StoragePath), "stored name keeps the extension")
	assert.NotEqual(t, "xray.png", saved[0].StoragePath, "stored name is randomized")
	assert.Equal(t, testVetID, saved[0].UploadedBy)

	content, err := os.ReadFile(filepath.Join(cfg.Dir, saved[0].StoragePath))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))
}

func TestUploadAttachmentsDefaultsCategory(t *testing.T) {
	var saved []entity.MedicalAttachment
	attachmentRepo := &fakeAttachmentRepo{
		CreateBatchFunc: func(_ context.Context, attachments []entity.MedicalAttachment) error {
			saved = attachments
			return nil
		},
	}
	uc := NewAttachmentUsecase(testLogger(), attachmentRepo, recordExists(), uploadConfig(t))

	files := fileHeaders(t, map[string]string{"notes.pdf": "pdf bytes"})
	_, err := uc.Upload(vetContext(), 9, files, "", "")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, entity.AttachmentOther, saved[0].Category)
}

func TestUploadAttachmentsGuards(t *testing.T) {
	cfg := uploadConfig(t)
	uc := NewAttachmentUsecase(testLogger(), &fakeAttachmentRepo{}, recordExists(), cfg)

	_, err := uc.Upload(vetContext(), 9, nil, "", "")
	assert.ErrorIs(t, err, ErrNoFilesProvided)

	files := fileHeaders(t, map[string]string{"xray.png": "fake image bytes"})
	_, err = uc.Upload(vetContext(), 9, files, "scan", "")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	missingRecord := NewAttachmentUsecase(testLogger(), &fakeAttachmentRepo{}, &fakeMedicalRecordRepo{}, cfg)
	_, err = missingRecord.Upload(vetContext(), 9, files, "", "")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUploadAttachmentsRejectsOversizedFile(t *testing.T) {
	cfg := uploadConfig(t)
	cfg.MaxFileSize = 4
	attachmentRepo := &fakeAttachmentRepo{}
	uc := NewAttachmentUsecase(testLogger(), attachmentRepo, recordExists(), cfg)

	files := fileHeaders(t, map[string]string{"xray.png": "more than four bytes"})
	_, err := uc.Upload(vetContext(), 9, files, "", "")
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Contains(t, err.Error(), "xray.png")
	assert.Zero(t, attachmentRepo.CreateBatchCalls)
}

func TestUploadAttachmentsCleansUpOnInsertFailure(t *testing.T) {
	cfg := uploadConfig(t)
	attachmentRepo := &fakeAttachmentRepo{
		CreateBatchFunc: func(_ context.Context, _ []entity.MedicalAttachment) error {
			return errors.New("insert failed")
		},
	}
	uc := NewAttachmentUsecase(testLogger(), attachmentRepo, recordExists(), cfg)

	files := fileHeaders(t, map[string]string{"xray.png": "fake image bytes"})
	_, err := uc.Upload(vetContext(), 9, files, "", "")
	assert.Error(t, err)

	entries, err := os.ReadDir(cfg.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "stored files are removed when the insert fails")
}

func TestResolveDownload(t *testing.T) {
	cfg := uploadConfig(t)
	storedName := "deadbeef.png"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, storedName), []byte("fake image bytes"), 0o644))

	attachmentRepo := &fakeAttachmentRepo{
		FindByIDFunc: func(_ context.Context, id int) (*entity.MedicalAttachment, error) {
			return &entity.MedicalAttachment{
				ID:          id,
				RecordID:    9,
				FileName:    "xray.png",
				StoragePath: storedName,
				MimeType:    "image/png",
				IsActive:    true,
			}, nil
		},
	}
	uc := NewAttachmentUsecase(testLogger(), attachmentRepo, recordExists(), cfg)

	path, fileName, mimeType, err := uc.ResolveDownload(clientContext(), 77)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Dir, storedName), path)
	assert.Equal(t, "xray.png", fileName)
	assert.Equal(t, "image/png", mimeType)
}

func TestResolveDownloadMissingBackingFile(t *testing.T) {
	attachmentRepo := &fakeAttachmentRepo{
		FindByIDFunc: func(_ context.Context, id int) (*entity.MedicalAttachment, error) {
			return &entity.MedicalAttachment{ID: id, StoragePath: "gone.png", IsActive: true}, nil
		},
	}
	uc := NewAttachmentUsecase(testLogger(), attachmentRepo, recordExists(), uploadConfig(t))

	_, _, _, err := uc.ResolveDownload(clientContext(), 77)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestDeleteAttachmentIsSoft(t *testing.T) {
	var updated *entity.MedicalAttachment
	attachmentRepo := &fakeAttachmentRepo{
		FindByIDFunc: func(_ context.Context, id int) (*entity.MedicalAttachment, error) {
			return &entity.MedicalAttachment{ID: id, IsActive: true}, nil
		},
		UpdateFunc: func(_ context.Context, attachment *entity.MedicalAttachment) error {
			updated = attachment
			return nil
		},
	}
	uc := NewAttachmentUsecase(testLogger(), attachmentRepo, recordExists(), uploadConfig(t))

	require.NoError(t, uc.Delete(vetContext(), 77))
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive)

	inactive := &fakeAttachmentRepo{
		FindByIDFunc: func(_ context.Context, id int) (*entity.MedicalAttachment, error) {
			return &entity.MedicalAttachment{ID: id, IsActive: false}, nil
		},
	}
	uc = NewAttachmentUsecase(testLogger(), inactive, recordExists(), uploadConfig(t))
	assert.ErrorIs(t, uc.Delete(vetContext(), 77), ErrAttachmentNotFound)
}
