package cli

import (
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
)

type tableStyle int

const (
	tablePlain tableStyle = iota
	tableRounded
)

// tableStyleFor picks box drawing for terminals and plain ASCII otherwise.
func tableStyleFor(w io.Writer) tableStyle {
	f, ok := w.(*os.File)
	if !ok {
		return tablePlain
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return tableRounded
	}
	return tablePlain
}

func renderAwards(awards []models.Award, edits map[int]models.EditAward, style tableStyle) string {
	if len(awards) == 0 {
		return "No awards yet."
	}

	editing := make(map[models.ServerID]bool, len(edits))
	for _, e := range edits {
		editing[e.ID] = true
	}

	tw := table.NewWriter()
	if style == tableRounded {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(table.Row{"ID", "Name", "Description", "Preview", ""})

	for _, a := range awards {
		mark := ""
		if editing[a.ID] {
			mark = "editing"
		}
		tw.AppendRow(table.Row{a.LocalID, a.Name, firstLine(a.Description), a.PreviewRef, mark})
	}
	return tw.Render()
}

func firstLine(s string) string {
	line, _, cut := strings.Cut(s, "\n")
	if cut {
		return line + " …"
	}
	return line
}

