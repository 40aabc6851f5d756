package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/scratchpad/internal/apperr"
	"github.com/starford/scratchpad/internal/models"
)

// saveNameResponse is returned when a save needs a file name.
type saveNameResponse struct {
	Error     string `json:"error"`
	Suggested string `json:"suggested"`
}

// NewFile handles POST /api/file/new.
//
//	@Summary		Replace the board with an empty document
//	@Tags			file
//	@Produce		json
//	@Param			confirm	query		bool	false	"Answer to the discard-changes prompt"
//	@Success		200		{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/file/new [post]
func (h *Handler) NewFile(w http.ResponseWriter, r *http.Request) {
	h.mutated(w, MutationResponse{Changed: h.board.NewFile(confirmFrom(r))})
}

// OpenFile handles POST /api/file/open.
//
//	@Summary		Replace the board with a flat-text document
//	@Description	Opens a saved document by name, or parses uploaded content.
//	@Tags			file
//	@Accept			json
//	@Produce		json
//	@Param			body	body		OpenRequest	true	"Saved name or uploaded content"
//	@Success		200		{object}	MutationResponse
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/file/open [post]
func (h *Handler) OpenFile(w http.ResponseWriter, r *http.Request) {
	var req OpenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name != "" {
		if _, err := h.board.OpenSaved(req.Name); err != nil {
			h.fileError(w, "open", err)
			return
		}
	} else {
		h.board.Open(req.FileName, req.Content)
	}
	h.mutated(w, MutationResponse{Changed: true})
}

// SaveFile handles POST /api/file/save.
//
//	@Summary		Save the board as a flat-text document
//	@Description	A plain save of a clean board answers 204. Pass download=true to receive the text as an attachment.
//	@Tags			file
//	@Accept			json
//	@Produce		json,plain
//	@Param			body		body		SaveRequest	false	"Save-as flag and name"
//	@Param			download	query		bool		false	"Respond with the file content"
//	@Success		200			{object}	board.Export
//	@Success		204
//	@Failure		400			{object}	saveNameResponse
//	@Security		BearerAuth
//	@Router			/file/save [post]
func (h *Handler) SaveFile(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	export, err := h.board.Save(req.SaveRequest)
	if errors.Is(err, apperr.ErrFileNameRequired) {
		writeJSON(w, http.StatusBadRequest, saveNameResponse{
			Error:     err.Error(),
			Suggested: h.board.SuggestedName(),
		})
		return
	}
	if err != nil {
		h.fileError(w, "save", err)
		return
	}
	if export == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if download := strings.ToLower(r.URL.Query().Get("download")); download == "1" || download == "true" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
		_, _ = w.Write([]byte(export.Content))
		return
	}
	writeJSON(w, http.StatusOK, export)
}

// ListFiles handles GET /api/files.
//
//	@Summary		List saved documents
//	@Tags			file
//	@Produce		json
//	@Success		200	{object}	FileListResponse
//	@Security		BearerAuth
//	@Router			/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	if h.exports == nil {
		writeJSON(w, http.StatusOK, FileListResponse{Files: []models.FileMeta{}})
		return
	}
	files, err := h.exports.List()
	if err != nil {
		h.fileError(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, FileListResponse{Files: files})
}

// DeleteFile handles DELETE /api/files/{name}.
//
//	@Summary		Remove a saved document
//	@Tags			file
//	@Param			name	path	string	true	"Document name"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/files/{name} [delete]
func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	if h.exports == nil {
		writeJSON(w, http.StatusNotFound, errorBody("no export directory"))
		return
	}
	if err := h.exports.Delete(chi.URLParam(r, "name")); err != nil {
		h.fileError(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fileError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrFileNameRequired), errors.Is(err, apperr.ErrInvalidName):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	default:
		slog.Error(op+" file failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
