package upload

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/client/repositories/uploads"
	"github.com/dmitrijs2005/awardkeeper/internal/cryptox"
	"github.com/dmitrijs2005/awardkeeper/internal/filex"
	"github.com/dmitrijs2005/awardkeeper/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrHandleExists       = errors.New("upload handle already exists")
	ErrTransferInProgress = errors.New("upload transfer in progress")
	ErrNoHandle           = errors.New("no upload handle")
)

// Transport moves one staged file to object storage.
type Transport interface {
	Put(ctx context.Context, f *models.UploadFile) error
}

// ObjectKey is where a staged file is stored: awards/<key>/<digest>-<name>.
func ObjectKey(key models.LocalID, digest, path string) models.MediaRef {
	return models.MediaRef(fmt.Sprintf("awards/%s/%s-%s", key, digest, filepath.Base(path)))
}

type Manager struct {
	mu        sync.Mutex
	handles   map[models.LocalID]*Handle
	repo      uploads.Repository
	transport Transport
	log       logging.Logger
}

func NewManager(repo uploads.Repository, transport Transport, log logging.Logger) *Manager {
	return &Manager{
		handles:   map[models.LocalID]*Handle{},
		repo:      repo,
		transport: transport,
		log:       log.With("module", "upload"),
	}
}

// Open registers an empty handle for key.
func (m *Manager) Open(ctx context.Context, key models.LocalID) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.handles[key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrHandleExists, key)
	}
	h := &Handle{key: key, m: m}
	m.handles[key] = h
	m.log.Debug(ctx, "handle opened", "key", key)
	return h, nil
}

// Handle returns the handle registered for key.
func (m *Manager) Handle(key models.LocalID) (*Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.handles[key]
	return h, ok
}

// Attach stages the file at path on the handle for key, opening the handle
// if there is none yet. The returned file's ObjectKey is where it will be
// stored.
func (m *Manager) Attach(ctx context.Context, key models.LocalID, path string) (*models.UploadFile, error) {
	abs, _, err := filex.RegularFile(path)
	if err != nil {
		return nil, err
	}
	digest, size, err := cryptox.FileDigest(abs)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	h, ok := m.handles[key]
	if !ok {
		h = &Handle{key: key, m: m}
		m.handles[key] = h
	}
	m.mu.Unlock()

	f := &models.UploadFile{
		ID:        uuid.NewString(),
		EntityKey: key,
		LocalPath: abs,
		ObjectKey: ObjectKey(key, digest, abs),
		Digest:    digest,
		Size:      size,
		Status:    models.UploadPending,
	}
	if err := h.add(ctx, f); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "file staged", "key", key, "object", f.ObjectKey, "size", size)
	return f, nil
}

// Start launches the transfer of every unfinished file of the handle for
// key. It returns as soon as the transfer is under way. Without a handle
// there is nothing to transfer and the returned channel is already closed.
//
// The transfer outlives ctx cancellation; only ctx values are kept.
func (m *Manager) Start(ctx context.Context, key models.LocalID) (<-chan error, error) {
	h, ok := m.Handle(key)
	if !ok {
		done := make(chan error)
		close(done)
		return done, nil
	}

	files, err := h.begin(ctx)
	if err != nil {
		return nil, err
	}

	done := make(chan error, 1)
	go m.transfer(context.WithoutCancel(ctx), h, files, done)
	return done, nil
}

func (m *Manager) transfer(ctx context.Context, h *Handle, files []*models.UploadFile, done chan<- error) {
	defer close(done)

	var errs []error
	for _, f := range files {
		status := models.UploadCompleted
		if err := m.transport.Put(ctx, f); err != nil {
			status = models.UploadFailed
			errs = append(errs, fmt.Errorf("%s: %w", f.ObjectKey, err))
			m.log.Warn(ctx, "upload failed", "key", h.key, "object", f.ObjectKey, "error", err)
		}
		h.setStatus(ctx, f, status)
	}

	err := errors.Join(errs...)
	h.finish()
	if err == nil {
		m.release(h)
		m.log.Info(ctx, "transfer finished", "key", h.key, "files", len(files))
	}
	done <- err
}

func (m *Manager) release(h *Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handles[h.key] == h {
		delete(m.handles, h.key)
	}
}

// Clear drops the handle for key without touching its persisted files.
func (m *Manager) Clear(ctx context.Context, key models.LocalID) error {
	h, ok := m.Handle(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandle, key)
	}
	if h.Running() {
		return fmt.Errorf("%w: %s", ErrTransferInProgress, key)
	}
	m.release(h)
	m.log.Debug(ctx, "handle cleared", "key", key)
	return nil
}

// DiscardAllFiles drops every file staged on the handle for key. found
// reports whether there was a handle.
func (m *Manager) DiscardAllFiles(ctx context.Context, key models.LocalID) (bool, error) {
	h, ok := m.Handle(key)
	if !ok {
		return false, nil
	}
	return true, h.DiscardAllFiles(ctx)
}

// Restore rebuilds handles from files whose transfer never completed and
// returns those files, grouped by entity key. Files interrupted mid-transfer
// are staged again as pending. Restored handles are not started.
func (m *Manager) Restore(ctx context.Context) ([]models.UploadFile, error) {
	files, err := m.repo.ListUnfinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore uploads: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var interrupted []string
	for _, f := range files {
		if f.Status == models.UploadUploading {
			interrupted = append(interrupted, f.ID)
		}
	}
	if err := m.repo.SetStatuses(ctx, interrupted, models.UploadPending); err != nil {
		return nil, fmt.Errorf("restore uploads: %w", err)
	}

	restored := make([]models.UploadFile, 0, len(files))
	handles := 0
	for _, f := range files {
		h, ok := m.handles[f.EntityKey]
		if !ok {
			h = &Handle{key: f.EntityKey, m: m}
			m.handles[f.EntityKey] = h
			handles++
		}
		if f.Status == models.UploadUploading {
			f.Status = models.UploadPending
		}
		h.files = append(h.files, f)
		restored = append(restored, *f)
	}
	if handles > 0 {
		m.log.Info(ctx, "upload handles restored", "handles", handles, "files", len(files))
	}
	return restored, nil
}

// Keys lists the entities that currently have a handle.
func (m *Manager) Keys() []models.LocalID {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]models.LocalID, 0, len(m.handles))
	for k := range m.handles {
		keys = append(keys, k)
	}
	return keys
}
