package upload

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
)

// Handle is the set of files staged for one entity.
type Handle struct {
	key models.LocalID
	m   *Manager

	mu      sync.Mutex
	files   []*models.UploadFile
	running bool
}

func (h *Handle) Key() models.LocalID {
	return h.key
}

// Files returns a copy of the staged files.
func (h *Handle) Files() []models.UploadFile {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.UploadFile, 0, len(h.files))
	for _, f := range h.files {
		out = append(out, *f)
	}
	return out
}

// Running reports whether a transfer is under way.
func (h *Handle) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

// DiscardAllFiles forgets every staged file, in memory and on disk. The
// handle itself stays registered.
func (h *Handle) DiscardAllFiles(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return fmt.Errorf("%w: %s", ErrTransferInProgress, h.key)
	}
	n, err := h.m.repo.DeleteByEntity(ctx, h.key)
	if err != nil {
		return err
	}
	h.files = nil
	h.m.log.Info(ctx, "staged files discarded", "key", h.key, "rows", n)
	return nil
}

func (h *Handle) add(ctx context.Context, f *models.UploadFile) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return fmt.Errorf("%w: %s", ErrTransferInProgress, h.key)
	}
	if err := h.m.repo.Upsert(ctx, f); err != nil {
		return err
	}
	h.files = append(h.files, f)
	return nil
}

// begin marks the handle as running and returns the files to transfer.
func (h *Handle) begin(ctx context.Context) ([]*models.UploadFile, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return nil, fmt.Errorf("%w: %s", ErrTransferInProgress, h.key)
	}

	var (
		todo []*models.UploadFile
		ids  []string
	)
	for _, f := range h.files {
		if f.Status == models.UploadCompleted {
			continue
		}
		todo = append(todo, f)
		ids = append(ids, f.ID)
	}
	if err := h.m.repo.SetStatuses(ctx, ids, models.UploadUploading); err != nil {
		return nil, err
	}
	for _, f := range todo {
		f.Status = models.UploadUploading
	}
	h.running = true
	return todo, nil
}

func (h *Handle) setStatus(ctx context.Context, f *models.UploadFile, status models.UploadStatus) {
	h.mu.Lock()
	f.Status = status
	h.mu.Unlock()

	if err := h.m.repo.SetStatus(ctx, f.ID, status); err != nil {
		h.m.log.Warn(ctx, "persist upload status", "id", f.ID, "status", status, "error", err)
	}
}

func (h *Handle) finish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.running = false
}
