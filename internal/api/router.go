package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/storage"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
// exports, if non-nil, backs the saved document listing.
func NewRouter(b *board.Board, authEnabled bool, token string, sseHandler http.Handler, exports storage.Provider) chi.Router {
	h := NewHandler(b, exports)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/board", h.GetBoard)
	r.Get("/trash", h.GetTrash)
	r.Delete("/trash", h.EmptyTrash)

	r.Route("/groups", func(r chi.Router) {
		r.Post("/", h.AddGroup)
		r.Patch("/{id}", h.RenameGroup)
		r.Post("/{id}/recolor", h.RecolorGroup)
		r.Delete("/{id}", h.DeleteGroup)
		r.Post("/{id}/notes", h.AddNote)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Post("/quick", h.QuickNote)
		r.Patch("/{id}", h.EditNote)
		r.Get("/{id}/text", h.NoteText)
		r.Post("/{id}/collapse", h.ToggleCollapse)
		r.Delete("/{id}", h.DeleteNote)
		r.Post("/{id}/restore", h.RestoreNote)
		r.Post("/{id}/transfer", h.TransferNote)
	})

	r.Post("/tracker/{counter}", h.AdjustTracker)

	r.Route("/file", func(r chi.Router) {
		r.Post("/new", h.NewFile)
		r.Post("/open", h.OpenFile)
		r.Post("/save", h.SaveFile)
	})
	r.Get("/files", h.ListFiles)
	r.Delete("/files/{name}", h.DeleteFile)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
