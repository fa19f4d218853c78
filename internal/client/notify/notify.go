package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/awardkeeper/internal/logging"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// Terminal prints one line per message. Workflows finish on their own
// goroutines, so writes are serialized.
type Terminal struct {
	mu       sync.Mutex
	w        io.Writer
	colorize bool
	log      logging.Logger
}

// NewTerminal writes to w, colouring the tag when w is a terminal.
func NewTerminal(w io.Writer, log logging.Logger) *Terminal {
	return &Terminal{
		w:        w,
		colorize: shouldColorize(w),
		log:      log.With("module", "notify"),
	}
}

func (t *Terminal) Success(ctx context.Context, msg string) {
	t.log.Info(ctx, "notification", "kind", "success", "message", msg)
	t.print(text.FgGreen, "[ok]", msg)
}

func (t *Terminal) Error(ctx context.Context, msg string) {
	t.log.Info(ctx, "notification", "kind", "error", "message", msg)
	t.print(text.FgRed, "[error]", msg)
}

func (t *Terminal) print(color text.Color, tag, msg string) {
	if t.colorize {
		tag = color.Sprint(tag)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s %s\n", tag, msg)
}

func shouldColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Noop drops every message.
type Noop struct{}

func (Noop) Success(context.Context, string) {}
func (Noop) Error(context.Context, string)   {}
