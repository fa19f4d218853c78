package notify

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/awardkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestTerminal_Lines(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf, logging.Discard())
	ctx := context.Background()

	n.Success(ctx, `Award "Gold" is successfully created.`)
	n.Error(ctx, "Error did occur: conflict")

	assert.Equal(t,
		"[ok] Award \"Gold\" is successfully created.\n[error] Error did occur: conflict\n",
		buf.String())
}

func TestTerminal_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf, logging.Discard())

	n.Error(context.Background(), "boom")

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestTerminal_ConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf, logging.Discard())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.Success(ctx, "done")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 50)
	for _, l := range lines {
		assert.Equal(t, "[ok] done", l)
	}
}

func TestNoop(t *testing.T) {
	var n Noop
	assert.NotPanics(t, func() {
		n.Success(context.Background(), "x")
		n.Error(context.Background(), "y")
	})
}
