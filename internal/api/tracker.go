package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/scratchpad/internal/apperr"
	"github.com/starford/scratchpad/internal/models"
)

// AdjustTracker handles POST /api/tracker/{counter}.
//
//	@Summary		Add a delta to a tracker counter, clamped at zero
//	@Tags			tracker
//	@Accept			json
//	@Produce		json
//	@Param			counter	path		string			true	"Counter"	Enums(roomsSoldCount, adultsCount, childrenCount, arrivalsCount)
//	@Param			body	body		TrackerRequest	true	"Delta"
//	@Success		200		{object}	MutationResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/tracker/{counter} [post]
func (h *Handler) AdjustTracker(w http.ResponseWriter, r *http.Request) {
	var req TrackerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	value, changed, err := h.board.AdjustTracker(models.Counter(chi.URLParam(r, "counter")), req.Delta)
	if errors.Is(err, apperr.ErrUnknownCounter) {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	h.mutated(w, MutationResponse{Changed: changed, Value: &value})
}
