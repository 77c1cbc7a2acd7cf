package repository

import (
	"context"
	"errors"
	"time"

	"vet-appointments-service/internal/domain/entity"
	domainRepo "vet-appointments-service/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *entity.MedicalRecord, vitals *entity.VitalSigns) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		if vitals != nil {
			vitals.RecordID = record.ID
			if err := tx.Create(vitals).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *medicalRecordRepository) FindByAppointmentID(ctx context.Context, appointmentID int) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("VitalSigns").
		Preload("Attachments", "is_active = ?", true).
		Where("appointment_id = ?", appointmentID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByPetID(ctx context.Context, petID int) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("VitalSigns").
		Preload("Attachments", "is_active = ?", true).
		Where("pet_id = ? AND is_active = ?", petID, true).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id int) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Where("record_id = ? AND is_active = ?", id, true).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) Update(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Omit("VitalSigns", "Attachments").Save(record).Error
}

func (r *medicalRecordRepository) UpsertVitalSigns(ctx context.Context, vitals *entity.VitalSigns) error {
	var existing entity.VitalSigns
	err := r.db.WithContext(ctx).
		Where("record_id = ?", vitals.RecordID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(vitals).Error
		}
		return err
	}
	vitals.ID = existing.ID
	vitals.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(vitals).Error
}

func (r *medicalRecordRepository) FindFollowUpsBetween(ctx context.Context, from, to time.Time, veterinarianID *int) ([]entity.MedicalRecord, error) {
	query := r.db.WithContext(ctx).
		Where("next_consultation BETWEEN ? AND ? AND is_active = ?", from, to, true)
	if veterinarianID != nil {
		query = query.Where("veterinarian_id = ?", *veterinarianID)
	}

	var records []entity.MedicalRecord
	err := query.Order("next_consultation ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

type medicalAttachmentRepository struct {
	db *gorm.DB
}

func NewMedicalAttachmentRepository(db *gorm.DB) domainRepo.MedicalAttachmentRepository {
	return &medicalAttachmentRepository{db: db}
}

func (r *medicalAttachmentRepository) CreateBatch(ctx context.Context, attachments []entity.MedicalAttachment) error {
	return r.db.WithContext(ctx).Create(&attachments).Error
}

func (r *medicalAttachmentRepository) FindByID(ctx context.Context, id int) (*entity.MedicalAttachment, error) {
	var attachment entity.MedicalAttachment
	err := r.db.WithContext(ctx).
		Where("attachment_id = ?", id).
		First(&attachment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attachment, nil
}

func (r *medicalAttachmentRepository) FindByRecordID(ctx context.Context, recordID int) ([]entity.MedicalAttachment, error) {
	var attachments []entity.MedicalAttachment
	err := r.db.WithContext(ctx).
		Where("record_id = ? AND is_active = ?", recordID, true).
		Order("created_at DESC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *medicalAttachmentRepository) Update(ctx context.Context, attachment *entity.MedicalAttachment) error {
	return r.db.WithContext(ctx).Save(attachment).Error
}
