package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
)

// TerminalConfirmer asks confirmation questions on the console. Only typing
// the affirmative label (in any case) confirms; an empty line or end of
// input declines.
type TerminalConfirmer struct {
	reader *bufio.Reader
	w      io.Writer
}

func NewTerminalConfirmer(reader *bufio.Reader, w io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{reader: reader, w: w}
}

func (c *TerminalConfirmer) Confirm(ctx context.Context, q models.Confirmation) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	label := q.AffirmativeLabel
	if label == "" {
		label = "yes"
	}
	fmt.Fprintf(c.w, "%s\n%s\nType %q to confirm: ", q.Title, q.Message, label)

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), label), nil
}
