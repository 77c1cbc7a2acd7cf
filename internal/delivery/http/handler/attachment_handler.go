package handler

import (
	"errors"
	"fmt"
	"net/http"

	"vet-appointments-service/internal/usecase"
	"vet-appointments-service/pkg/response"
)

// multipartMemoryLimit caps the in-memory part of a multipart parse; larger
// files spill to temp files.
const multipartMemoryLimit = 32 << 20

type AttachmentHandler struct {
	attachmentUsecase usecase.AttachmentUsecase
}

func NewAttachmentHandler(attachmentUsecase usecase.AttachmentUsecase) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentUsecase: attachmentUsecase,
	}
}

func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	recordID, ok := pathID(r, "recordId")
	if !ok {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["files"]
	category := r.FormValue("category")
	description := r.FormValue("description")

	attachments, err := h.attachmentUsecase.Upload(r.Context(), recordID, files, category, description)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrNoFilesProvided):
			response.BadRequest(w, "At least one file is required")
		case errors.Is(err, usecase.ErrInvalidCategory):
			response.BadRequest(w, "Invalid attachment category")
		case errors.Is(err, usecase.ErrFileTooLarge):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrRecordNotFound):
			response.NotFound(w, "Medical record not found")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to upload attachments", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Attachments uploaded successfully", attachments)
}

func (h *AttachmentHandler) ListByRecord(w http.ResponseWriter, r *http.Request) {
	recordID, ok := pathID(r, "recordId")
	if !ok {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	attachments, err := h.attachmentUsecase.ListByRecord(r.Context(), recordID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrRecordNotFound) {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to list attachments", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Attachments retrieved successfully", attachments)
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	attachmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid attachment ID")
		return
	}

	if err := h.attachmentUsecase.Delete(r.Context(), attachmentID); err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrAttachmentNotFound) {
			response.NotFound(w, "Attachment not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete attachment", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Attachment deleted successfully", nil)
}

func (h *AttachmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	attachmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid attachment ID")
		return
	}

	path, fileName, mimeType, err := h.attachmentUsecase.ResolveDownload(r.Context(), attachmentID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrAttachmentNotFound) {
			response.NotFound(w, "Attachment not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to download attachment", err.Error())
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if mimeType != "" {
		w.Header().Set("Content-Type", mimeType)
	}
	http.ServeFile(w, r, path)
}
