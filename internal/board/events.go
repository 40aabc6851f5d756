package board

// Change kinds published after each mutation.
const (
	KindGroupAdded     = "group.added"
	KindGroupRenamed   = "group.renamed"
	KindGroupRecolored = "group.recolored"
	KindGroupDeleted   = "group.deleted"
	KindNoteAdded      = "note.added"
	KindNoteEdited     = "note.edited"
	KindNoteCollapsed  = "note.collapsed"
	KindNoteDeleted    = "note.deleted"
	KindNoteRestored   = "note.restored"
	KindNoteMoved      = "note.moved"
	KindTrashEmptied   = "trash.emptied"
	KindTrackerChanged = "tracker.changed"
	KindFileNew        = "file.new"
	KindFileOpened     = "file.opened"
	KindFileSaved      = "file.saved"
)
