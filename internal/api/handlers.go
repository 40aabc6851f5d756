package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/storage"
)

// Handler holds API route handlers.
type Handler struct {
	board   *board.Board
	exports storage.Provider
}

// NewHandler creates a new Handler.
func NewHandler(b *board.Board, exports storage.Provider) *Handler {
	return &Handler{board: b, exports: exports}
}

// mutated writes the outcome of a board operation. Operations aimed at
// identifiers that no longer exist are silent no-ops and still answer 200.
func (h *Handler) mutated(w http.ResponseWriter, resp MutationResponse) {
	resp.Board = h.board.View()
	writeJSON(w, http.StatusOK, resp)
}

// GetBoard handles GET /api/board.
//
//	@Summary		Get the whole board
//	@Tags			board
//	@Produce		json
//	@Success		200	{object}	board.View
//	@Security		BearerAuth
//	@Router			/board [get]
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.board.View())
}

// GetTrash handles GET /api/trash.
//
//	@Summary		List trashed notes, most recently deleted group first
//	@Tags			trash
//	@Produce		json
//	@Success		200	{object}	TrashResponse
//	@Security		BearerAuth
//	@Router			/trash [get]
func (h *Handler) GetTrash(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TrashResponse{Notes: h.board.TrashNotes()})
}

// EmptyTrash handles DELETE /api/trash.
//
//	@Summary		Permanently discard the trash
//	@Tags			trash
//	@Produce		json
//	@Param			confirm	query		bool	false	"Answer to the confirmation prompt"
//	@Success		200		{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/trash [delete]
func (h *Handler) EmptyTrash(w http.ResponseWriter, r *http.Request) {
	h.mutated(w, MutationResponse{Changed: h.board.EmptyTrash(confirmFrom(r))})
}

// AddGroup handles POST /api/groups.
//
//	@Summary		Append a new group
//	@Tags			groups
//	@Accept			json
//	@Produce		json
//	@Param			body	body		GroupRequest	false	"Group name, defaults to New Group"
//	@Success		201		{object}	MutationResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/groups [post]
func (h *Handler) AddGroup(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g := h.board.AddGroup(req.Name)
	writeJSON(w, http.StatusCreated, MutationResponse{Changed: true, Group: g, Board: h.board.View()})
}

// RenameGroup handles PATCH /api/groups/{id}.
//
//	@Summary		Rename a group
//	@Tags			groups
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Group id"
//	@Param			body	body		GroupRequest	true	"New name"
//	@Success		200		{object}	MutationResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/groups/{id} [patch]
func (h *Handler) RenameGroup(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.mutated(w, MutationResponse{Changed: h.board.RenameGroup(chi.URLParam(r, "id"), req.Name)})
}

// RecolorGroup handles POST /api/groups/{id}/recolor.
//
//	@Summary		Advance a group to the next palette color
//	@Tags			groups
//	@Produce		json
//	@Param			id	path		string	true	"Group id"
//	@Success		200	{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/groups/{id}/recolor [post]
func (h *Handler) RecolorGroup(w http.ResponseWriter, r *http.Request) {
	h.mutated(w, MutationResponse{Changed: h.board.RecolorGroup(chi.URLParam(r, "id"))})
}

// DeleteGroup handles DELETE /api/groups/{id}.
//
//	@Summary		Move a group and its notes to the trash
//	@Tags			groups
//	@Produce		json
//	@Param			id		path		string	true	"Group id"
//	@Param			confirm	query		bool	false	"Answer to the confirmation prompt"
//	@Success		200		{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/groups/{id} [delete]
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	h.mutated(w, MutationResponse{Changed: h.board.DeleteGroup(chi.URLParam(r, "id"), confirmFrom(r))})
}

// AddNote handles POST /api/groups/{id}/notes.
//
//	@Summary		Append a note to a group
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Group id"
//	@Param			body	body		NoteRequest	false	"Note text"
//	@Success		201		{object}	MutationResponse
//	@Success		200		{object}	MutationResponse	"Group no longer exists"
//	@Security		BearerAuth
//	@Router			/groups/{id}/notes [post]
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	n, ok := h.board.AddNote(chi.URLParam(r, "id"), req.Text)
	if !ok {
		h.mutated(w, MutationResponse{})
		return
	}
	writeJSON(w, http.StatusCreated, MutationResponse{Changed: true, Note: n, Board: h.board.View()})
}

// QuickNote handles POST /api/notes/quick.
//
//	@Summary		Add an empty note to the Untagged group, creating it if needed
//	@Tags			notes
//	@Produce		json
//	@Success		201	{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/notes/quick [post]
func (h *Handler) QuickNote(w http.ResponseWriter, r *http.Request) {
	n := h.board.QuickNote()
	writeJSON(w, http.StatusCreated, MutationResponse{Changed: true, Note: n, Board: h.board.View()})
}

// EditNote handles PATCH /api/notes/{id}.
//
//	@Summary		Replace the text of an expanded note
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Note id"
//	@Param			body	body		NoteRequest	true	"New text"
//	@Success		200		{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [patch]
func (h *Handler) EditNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.mutated(w, MutationResponse{Changed: h.board.EditNoteText(chi.URLParam(r, "id"), req.Text)})
}

// NoteText handles GET /api/notes/{id}/text.
//
//	@Summary		Get the raw text of a live or trashed note
//	@Tags			notes
//	@Produce		plain
//	@Param			id	path		string	true	"Note id"
//	@Success		200	{string}	string
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id}/text [get]
func (h *Handler) NoteText(w http.ResponseWriter, r *http.Request) {
	text, ok := h.board.NoteText(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("note not found"))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// ToggleCollapse handles POST /api/notes/{id}/collapse.
//
//	@Summary		Flip a note between collapsed and expanded
//	@Tags			notes
//	@Produce		json
//	@Param			id	path		string	true	"Note id"
//	@Success		200	{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/notes/{id}/collapse [post]
func (h *Handler) ToggleCollapse(w http.ResponseWriter, r *http.Request) {
	_, ok := h.board.ToggleCollapse(chi.URLParam(r, "id"))
	h.mutated(w, MutationResponse{Changed: ok})
}

// DeleteNote handles DELETE /api/notes/{id}.
//
//	@Summary		Move a note to the trash
//	@Tags			notes
//	@Produce		json
//	@Param			id		path		string	true	"Note id"
//	@Param			confirm	query		bool	false	"Answer to the confirmation prompt"
//	@Success		200		{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	h.mutated(w, MutationResponse{Changed: h.board.DeleteNote(chi.URLParam(r, "id"), confirmFrom(r))})
}

// RestoreNote handles POST /api/notes/{id}/restore.
//
//	@Summary		Return a trashed note to a live group of the same name
//	@Tags			trash
//	@Produce		json
//	@Param			id	path		string	true	"Trashed note id"
//	@Success		200	{object}	MutationResponse
//	@Security		BearerAuth
//	@Router			/notes/{id}/restore [post]
func (h *Handler) RestoreNote(w http.ResponseWriter, r *http.Request) {
	h.mutated(w, MutationResponse{Changed: h.board.RestoreNote(chi.URLParam(r, "id"))})
}

// TransferNote handles POST /api/notes/{id}/transfer.
//
//	@Summary		Drop a note into a group at the pointer position
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Note id"
//	@Param			body	body		TransferRequest	true	"Drop target and geometry"
//	@Success		200		{object}	MutationResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id}/transfer [post]
func (h *Handler) TransferNote(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	var changed bool
	if len(req.Boxes) == 0 && req.BeforeID != "" {
		changed = h.board.MoveNote(id, req.GroupID, req.BeforeID)
	} else {
		changed = h.board.Transfer(id, req.GroupID, req.Boxes, req.PointerY)
	}
	h.mutated(w, MutationResponse{Changed: changed})
}
