// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes scratchpad tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/codec"
	"github.com/starford/scratchpad/internal/models"
)

const exportURI = "scratchpad://export"

// Server wraps the MCP server with scratchpad tools.
type Server struct {
	mcp   *server.MCPServer
	board *board.Board
}

// New creates a new MCP server with all scratchpad tools registered.
func New(b *board.Board) *Server {
	s := &Server{board: b}

	s.mcp = server.NewMCPServer(
		"Scratchpad",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_board",
		mcp.WithDescription("Return the whole scratchpad: groups with their notes, the trash, tracker counters and the dirty flag."),
	), s.getBoard)

	s.mcp.AddTool(mcp.NewTool("add_group",
		mcp.WithDescription("Append a new group of notes."),
		mcp.WithString("name", mcp.Description("Group name (defaults to \"New Group\")")),
	), s.addGroup)

	s.mcp.AddTool(mcp.NewTool("rename_group",
		mcp.WithDescription("Rename a group."),
		mcp.WithString("group_id", mcp.Required(), mcp.Description("Id of the group")),
		mcp.WithString("name", mcp.Required(), mcp.Description("New group name")),
	), s.renameGroup)

	s.mcp.AddTool(mcp.NewTool("delete_group",
		mcp.WithDescription("Move a group and all its notes to the trash. "+
			"Nothing happens unless confirm is true."),
		mcp.WithString("group_id", mcp.Required(), mcp.Description("Id of the group")),
		mcp.WithBoolean("confirm", mcp.Description("Set to true once the user agreed to the deletion")),
	), s.deleteGroup)

	s.mcp.AddTool(mcp.NewTool("add_note",
		mcp.WithDescription("Append a note to a group."),
		mcp.WithString("group_id", mcp.Required(), mcp.Description("Id of the group")),
		mcp.WithString("text", mcp.Description("Note text")),
	), s.addNote)

	s.mcp.AddTool(mcp.NewTool("edit_note",
		mcp.WithDescription("Replace the text of a note. Collapsed notes are read-only."),
		mcp.WithString("note_id", mcp.Required(), mcp.Description("Id of the note")),
		mcp.WithString("text", mcp.Required(), mcp.Description("New note text")),
	), s.editNote)

	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Move a note to the trash. Nothing happens unless confirm is true."),
		mcp.WithString("note_id", mcp.Required(), mcp.Description("Id of the note")),
		mcp.WithBoolean("confirm", mcp.Description("Set to true once the user agreed to the deletion")),
	), s.deleteNote)

	s.mcp.AddTool(mcp.NewTool("list_trash",
		mcp.WithDescription("List trashed notes, most recently deleted first."),
	), s.listTrash)

	s.mcp.AddTool(mcp.NewTool("restore_note",
		mcp.WithDescription("Return a trashed note to the group it came from, recreating the group if needed."),
		mcp.WithString("note_id", mcp.Required(), mcp.Description("Id of the trashed note")),
	), s.restoreNote)

	s.mcp.AddTool(mcp.NewTool("move_note",
		mcp.WithDescription("Move a note into a group, before another note or at the end."),
		mcp.WithString("note_id", mcp.Required(), mcp.Description("Id of the note to move")),
		mcp.WithString("group_id", mcp.Required(), mcp.Description("Id of the target group")),
		mcp.WithString("before_id", mcp.Description("Id of the note to insert before (empty appends)")),
	), s.moveNote)

	s.mcp.AddTool(mcp.NewTool("adjust_tracker",
		mcp.WithDescription("Add a delta to a tracker counter. Counters never go below zero."),
		mcp.WithString("counter", mcp.Required(),
			mcp.Enum(counterNames()...),
			mcp.Description("Counter to adjust")),
		mcp.WithNumber("delta", mcp.Required(),
			mcp.Min(-board.MaxTrackerDelta), mcp.Max(board.MaxTrackerDelta),
			mcp.Description("Amount to add, may be negative")),
	), s.adjustTracker)

	s.mcp.AddTool(mcp.NewTool("export_text",
		mcp.WithDescription("Render the scratchpad in the flat-text file format: the tracker line, then the first group's notes separated by blank lines."),
	), s.exportText)

	s.mcp.AddResource(
		mcp.NewResource(exportURI, "Scratchpad Export",
			mcp.WithResourceDescription("Current scratchpad rendered in the flat-text file format."),
			mcp.WithMIMEType("text/plain"),
		),
		s.readExportResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func counterNames() []string {
	out := make([]string, len(models.Counters))
	for i, c := range models.Counters {
		out[i] = string(c)
	}
	return out
}

func jsonResult(v any) *mcp.CallToolResult {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(out))
}

// changed reports the outcome of a mutation. Unknown ids are no-ops, not errors.
func changed(ok bool, what string) *mcp.CallToolResult {
	if !ok {
		return mcp.NewToolResultText("no change: " + what)
	}
	return mcp.NewToolResultText("ok: " + what)
}

func confirmArg(req mcp.CallToolRequest) board.Confirm {
	if req.GetBool("confirm", false) {
		return board.Always
	}
	return board.Never
}

func (s *Server) getBoard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.board.View()), nil
}

func (s *Server) addGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	g := s.board.AddGroup(strings.TrimSpace(req.GetString("name", "")))
	return jsonResult(g), nil
}

func (s *Server) renameGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return changed(s.board.RenameGroup(id, name), "renamed group "+id), nil
}

func (s *Server) deleteGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return changed(s.board.DeleteGroup(id, confirmArg(req)), "deleted group "+id), nil
}

func (s *Server) addNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupID, err := req.RequireString("group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, ok := s.board.AddNote(groupID, req.GetString("text", ""))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("group not found: %s", groupID)), nil
	}
	return jsonResult(n), nil
}

func (s *Server) editNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("note_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return changed(s.board.EditNoteText(id, text), "edited note "+id), nil
}

func (s *Server) deleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("note_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return changed(s.board.DeleteNote(id, confirmArg(req)), "deleted note "+id), nil
}

func (s *Server) listTrash(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.board.TrashNotes()), nil
}

func (s *Server) restoreNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("note_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return changed(s.board.RestoreNote(id), "restored note "+id), nil
}

func (s *Server) moveNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("note_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	groupID, err := req.RequireString("group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return changed(s.board.MoveNote(id, groupID, req.GetString("before_id", "")), "moved note "+id), nil
}

func (s *Server) adjustTracker(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counter, err := req.RequireString("counter")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	delta, err := req.RequireFloat("delta")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if math.IsNaN(delta) || math.Abs(delta) > board.MaxTrackerDelta {
		return mcp.NewToolResultError(fmt.Sprintf("delta must be between -%d and %d", board.MaxTrackerDelta, board.MaxTrackerDelta)), nil
	}
	value, _, err := s.board.AdjustTracker(models.Counter(counter), int(delta))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s = %d", models.Counter(counter).Label(), value)), nil
}

func (s *Server) exportText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(codec.ExportText(s.board.Document())), nil
}

func (s *Server) readExportResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      exportURI,
			MIMEType: "text/plain",
			Text:     codec.ExportText(s.board.Document()),
		},
	}, nil
}
