package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v3"

	"github.com/starford/scratchpad/internal"
	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/clip"
	"github.com/starford/scratchpad/internal/codec"
	"github.com/starford/scratchpad/internal/render"
)

var (
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.Faint)
)

// withWorkspace loads the board for a one-shot command. Logs go to stderr so
// stdout stays clean for command output.
func withWorkspace(cmd *cli.Command, fn func(ws *internal.Workspace) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ws, err := internal.OpenWorkspace(cfg, internal.NewLogger(os.Stderr, cfg.App.LogLevel))
	if err != nil {
		return err
	}
	defer ws.Close()
	return fn(ws)
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Print the board in the flat-text file format",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write to this file instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withWorkspace(cmd, func(ws *internal.Workspace) error {
				text := codec.ExportText(ws.Board.Document())
				if out := cmd.String("out"); out != "" {
					return os.WriteFile(out, []byte(text), 0o644)
				}
				_, err := fmt.Fprintln(os.Stdout, text)
				return err
			})
		},
	}
}

func saveCommand() *cli.Command {
	return &cli.Command{
		Name:  "save",
		Usage: "Save the board to the export directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "File name, required when the board has none or with --as",
			},
			&cli.BoolFlag{
				Name:  "as",
				Usage: "Save under a new name even when the board is unchanged",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withWorkspace(cmd, func(ws *internal.Workspace) error {
				exp, err := ws.Board.Save(board.SaveRequest{SaveAs: cmd.Bool("as"), Name: cmd.String("name")})
				if err != nil {
					return fmt.Errorf("%w (suggested name: %s)", err, ws.Board.SuggestedName())
				}
				if exp == nil {
					_, err = infoColor.Fprintln(color.Output, "nothing to save")
					return err
				}
				_, err = okColor.Fprintf(color.Output, "saved %s\n", exp.FileName)
				return err
			})
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Replace the board with a flat-text file",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("import: file argument is required")
			}
			return withWorkspace(cmd, func(ws *internal.Workspace) error {
				return ws.ImportFile(path)
			})
		},
	}
}

func filesCommand() *cli.Command {
	return &cli.Command{
		Name:  "files",
		Usage: "List saved documents",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withWorkspace(cmd, func(ws *internal.Workspace) error {
				files, err := ws.Exports.List()
				if err != nil {
					return err
				}
				if len(files) == 0 {
					_, err = infoColor.Fprintln(color.Output, "no saved documents")
					return err
				}
				bold := color.New(color.Bold)
				tbl := uitable.New()
				tbl.Separator = "  "
				tbl.AddRow(bold.Sprint("NAME"), bold.Sprint("SIZE"), bold.Sprint("UPDATED"))
				for _, f := range files {
					tbl.AddRow(f.Name, f.Size, f.UpdatedAt.Format("2006-01-02 15:04"))
				}
				tbl.RightAlign(1)
				_, err = fmt.Fprintln(color.Output, tbl)
				return err
			})
		},
	}
}

func copyCommand() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Copy a note's text to the clipboard",
		ArgsUsage: "<note-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("copy: note id is required")
			}
			return withWorkspace(cmd, func(ws *internal.Workspace) error {
				method, err := clip.CopyNote(ws.Board, id)
				if err != nil {
					return err
				}
				_, err = okColor.Fprintf(color.Output, "copied via %s\n", method)
				return err
			})
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the board: tracker, groups and notes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "width",
				Usage: "Wrap width in terminal cells",
				Value: render.DefaultWidth,
			},
			&cli.BoolFlag{
				Name:  "ids",
				Usage: "Show group and note ids",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withWorkspace(cmd, func(ws *internal.Workspace) error {
				return render.Board(os.Stdout, ws.Board.View(), render.Options{
					Width:   int(cmd.Int("width")),
					ShowIDs: cmd.Bool("ids"),
				})
			})
		},
	}
}
