package entity

import (
	"time"
)

// AttachmentCategory classifies an uploaded medical file
type AttachmentCategory string

const (
	AttachmentRadiography AttachmentCategory = "radiography"
	AttachmentAnalysis    AttachmentCategory = "analysis"
	AttachmentUltrasound  AttachmentCategory = "ultrasound"
	AttachmentPhoto       AttachmentCategory = "photo"
	AttachmentDocument    AttachmentCategory = "document"
	AttachmentOther       AttachmentCategory = "other"
)

func (c AttachmentCategory) IsValid() bool {
	switch c {
	case AttachmentRadiography, AttachmentAnalysis, AttachmentUltrasound, AttachmentPhoto, AttachmentDocument, AttachmentOther:
		return true
	}
	return false
}

// MedicalAttachment is file metadata for a document stored against a medical
// record. The file itself lives on disk under the configured upload dir;
// StoragePath is relative to it. Soft-deleted independently of its record.
type MedicalAttachment struct {
	ID          int                `gorm:"primaryKey;autoIncrement;column:attachment_id" json:"attachment_id"`
	RecordID    int                `gorm:"not null;index" json:"record_id"`
	FileName    string             `gorm:"type:varchar(255);not null" json:"file_name"`
	Category    AttachmentCategory `gorm:"type:varchar(20);not null;default:'other'" json:"category"`
	StoragePath string             `gorm:"type:varchar(500);not null" json:"storage_path"`
	FileSize    int64              `gorm:"not null" json:"file_size"`
	MimeType    string             `gorm:"type:varchar(100);not null" json:"mime_type"`
	Description string             `gorm:"type:text" json:"description"`
	UploadedBy  int                `gorm:"not null" json:"uploaded_by"`
	IsActive    bool               `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalAttachment) TableName() string {
	return "medical_attachments"
}
