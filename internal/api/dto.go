package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/models"
	"github.com/starford/scratchpad/internal/reorder"
)

const (
	maxNameLength = 200
	maxTextLength = 64 << 10
	maxDelta      = board.MaxTrackerDelta
)

// GroupRequest is the body for creating or renaming a group.
type GroupRequest struct {
	Name string `json:"name" example:"Front desk"`
}

// Validate validates the request.
func (r *GroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.RuneLength(0, maxNameLength)),
	)
}

// NoteRequest is the body for creating or editing a note.
type NoteRequest struct {
	Text string `json:"text" example:"Room 101 late checkout"`
}

// Validate validates the request.
func (r *NoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.RuneLength(0, maxTextLength)),
	)
}

// TransferRequest is the body of a drop: the target group, the displayed
// note boxes of that group and the pointer position.
type TransferRequest struct {
	GroupID  string        `json:"groupId"`
	PointerY float64       `json:"pointerY"`
	Boxes    []reorder.Box `json:"boxes"`
	// BeforeID places the note directly before another note, bypassing
	// geometry. Used when Boxes is empty.
	BeforeID string `json:"beforeId,omitempty"`
}

// Validate validates the request.
func (r *TransferRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.GroupID, validation.Required),
		validation.Field(&r.Boxes, validation.Each(validation.By(validBox))),
	)
}

func validBox(value any) error {
	b, _ := value.(reorder.Box)
	return validation.ValidateStruct(&b,
		validation.Field(&b.NoteID, validation.Required),
		validation.Field(&b.Height, validation.Min(0.0)),
	)
}

// TrackerRequest is the body for adjusting a tracker counter.
type TrackerRequest struct {
	Delta int `json:"delta" example:"1"`
}

// Validate validates the request.
func (r *TrackerRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Delta, validation.Min(-maxDelta), validation.Max(maxDelta)),
	)
}

// OpenRequest opens either a saved document by Name or uploaded content.
type OpenRequest struct {
	Name     string `json:"name,omitempty" example:"handover"`
	FileName string `json:"fileName,omitempty" example:"handover.txt"`
	Content  string `json:"content,omitempty"`
}

// Validate validates the request.
func (r *OpenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required.When(r.FileName == "" && r.Content == "")),
		validation.Field(&r.FileName, validation.RuneLength(0, maxNameLength)),
	)
}

// SaveRequest is the body for saving the document as a flat-text file.
type SaveRequest struct {
	board.SaveRequest
}

// Validate validates the request.
func (r *SaveRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.RuneLength(0, maxNameLength)),
	)
}

// MutationResponse reports whether an operation changed the board, with the
// resulting state.
type MutationResponse struct {
	Changed bool          `json:"changed"`
	Group   *models.Group `json:"group,omitempty"`
	Note    *models.Note  `json:"note,omitempty"`
	Value   *int          `json:"value,omitempty"`
	Board   board.View    `json:"board"`
}

// TrashResponse lists the notes in the trash.
type TrashResponse struct {
	Notes []*models.Note `json:"notes"`
}

// FileListResponse lists saved documents.
type FileListResponse struct {
	Files []models.FileMeta `json:"files"`
}
