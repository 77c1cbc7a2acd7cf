package dto

import "time"

type AttachmentResponse struct {
	AttachmentID int       `json:"attachment_id"`
	RecordID     int       `json:"record_id"`
	FileName     string    `json:"file_name"`
	Category     string    `json:"category"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	Description  string    `json:"description,omitempty"`
	UploadedBy   int       `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type AttachmentListResponse struct {
	Attachments []AttachmentResponse `json:"attachments"`
	Total       int                  `json:"total"`
}
