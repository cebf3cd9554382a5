package labresults

import (
	"errors"
	"net/http"

	"diet-profile-go/internal/domain/labresult"
	"diet-profile-go/internal/transport/httpserver/handler/common"
	"diet-profile-go/internal/transport/httpserver/middleware"
)

const (
	formFileField      = "file"
	multipartOverhead  = 1 << 20
	multipartMaxMemory = 1 << 20
)

type uploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

type latestResponse struct {
	LabResult *string `json:"lab_result"`
}

func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.WriteUnauthenticated(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.LabResults.MaxBytes()+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.log.BusinessError("lab_results.upload: body too large", err, "user_id", user.ID)
			common.WriteError(w, http.StatusBadRequest, "validation_error", "file too large")
			return
		}
		h.log.BusinessError("lab_results.upload: invalid multipart body", err, "user_id", user.ID)
		common.WriteError(w, http.StatusBadRequest, "validation_error", "multipart form with a file field is required")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		h.log.BusinessError("lab_results.upload: file missing", err, "user_id", user.ID)
		common.WriteError(w, http.StatusBadRequest, "validation_error", "file is required")
		return
	}
	defer file.Close()

	result, err := h.LabResults.Upload(r.Context(), user.ID, labresult.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		switch {
		case errors.Is(err, labresult.ErrNotPDF):
			h.log.BusinessError("lab_results.upload: not a pdf", err, "user_id", user.ID)
			common.WriteError(w, http.StatusBadRequest, "validation_error", "Only PDF files are allowed")
		case errors.Is(err, labresult.ErrFileTooLarge):
			h.log.BusinessError("lab_results.upload: file too large", err, "user_id", user.ID, "size", header.Size)
			common.WriteError(w, http.StatusBadRequest, "validation_error", "file too large")
		case errors.Is(err, labresult.ErrEmptyFile):
			h.log.BusinessError("lab_results.upload: empty file", err, "user_id", user.ID)
			common.WriteError(w, http.StatusBadRequest, "validation_error", "file is empty")
		case errors.Is(err, labresult.ErrPersistence):
			h.log.InternalError("lab_results.upload: persistence failed", err, "user_id", user.ID)
			common.WriteError(w, http.StatusInternalServerError, "persistence_error", "could not store lab result")
		default:
			h.log.InternalError("lab_results.upload: failed", err, "user_id", user.ID)
			common.WriteInternalError(w)
		}
		return
	}

	common.WriteJSON(w, http.StatusOK, uploadResponse{
		Message:  "Lab result uploaded successfully",
		Filename: result.Filename,
	})
}

func (h *Handlers) Latest(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.WriteUnauthenticated(w)
		return
	}

	latest, err := h.LabResults.Latest(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, labresult.ErrLabResultNotFound) {
			common.WriteJSON(w, http.StatusOK, latestResponse{})
			return
		}
		h.log.InternalError("lab_results.latest: failed", err, "user_id", user.ID)
		common.WriteInternalError(w)
		return
	}

	filename := latest.Filename
	common.WriteJSON(w, http.StatusOK, latestResponse{LabResult: &filename})
}
