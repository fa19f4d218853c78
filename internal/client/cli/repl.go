package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Config(ctx context.Context, args []string) error
	Section(ctx context.Context, args []string) error
	New(ctx context.Context) error
	Attach(ctx context.Context, args []string) error
	PreviewReset(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Preview(ctx context.Context, args []string) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  list | l              show awards
  refresh               reload awards from the server
  config [path]         show the server config or one value of it
  section <name>        switch to awards, create or settings
  new                   start a new award
  attach <path>         stage a preview image for the new award
  preview-reset         drop the staged preview of the new award
  create                submit the new award
  edit <id>             edit an award
  preview <path>        upload a new preview for the award being edited
  save                  send the award being edited
  cancel                drop the edit
  delete <id>           delete an award
  exit | quit           leave the console`

// runREPL starts a simple read–eval–print loop for the award console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Commands share reader with the prompts they show, so each command runs to
// completion before the next line is read.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("acp %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "config":
			_ = a.Config(ctx, args)

		case "section":
			_ = a.Section(ctx, args)

		case "new":
			_ = a.New(ctx)

		case "attach":
			_ = a.Attach(ctx, args)

		case "preview-reset":
			_ = a.PreviewReset(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "preview":
			_ = a.Preview(ctx, args)

		case "save":
			_ = a.Save(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete":
			_ = a.Delete(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
