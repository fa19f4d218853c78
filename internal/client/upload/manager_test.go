package upload

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/awardkeeper/internal/client/client"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/client/repositories/uploads"
	"github.com/dmitrijs2005/awardkeeper/internal/cryptox"
	"github.com/dmitrijs2005/awardkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type fakeTransport struct {
	mu    sync.Mutex
	puts  []models.MediaRef
	fail  map[models.MediaRef]error
	gate  chan struct{}
	ctxOK []bool
}

func (f *fakeTransport) Put(ctx context.Context, file *models.UploadFile) error {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, file.ObjectKey)
	f.ctxOK = append(f.ctxOK, ctx.Err() == nil)
	return f.fail[file.ObjectKey]
}

func (f *fakeTransport) Puts() []models.MediaRef {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.MediaRef(nil), f.puts...)
}

func setupRepo(t *testing.T) (*uploads.SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "acp.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, client.RunMigrations(context.Background(), db))
	return uploads.NewSQLiteRepository(db), db
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newManager(t *testing.T, tr Transport) (*Manager, *uploads.SQLiteRepository) {
	t.Helper()
	repo, _ := setupRepo(t)
	return NewManager(repo, tr, logging.Discard()), repo
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("transfer did not finish")
		return nil
	}
}

func TestOpen_OneHandlePerKey(t *testing.T) {
	m, _ := newManager(t, &fakeTransport{})
	ctx := context.Background()

	h, err := m.Open(ctx, models.NewAwardID)
	require.NoError(t, err)
	assert.Equal(t, models.NewAwardID, h.Key())

	_, err = m.Open(ctx, models.NewAwardID)
	require.ErrorIs(t, err, ErrHandleExists)

	got, ok := m.Handle(models.NewAwardID)
	require.True(t, ok)
	assert.Same(t, h, got)

	_, err = m.Open(ctx, "award-3")
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.LocalID{models.NewAwardID, "award-3"}, m.Keys())
}

func TestAttach_StagesAndPersists(t *testing.T) {
	m, repo := newManager(t, &fakeTransport{})
	ctx := context.Background()
	path := writeFile(t, "gold.png", "png-bytes")

	f, err := m.Attach(ctx, models.NewAwardID, path)
	require.NoError(t, err)

	digest, _, err := cryptox.FileDigest(path)
	require.NoError(t, err)
	assert.Equal(t, models.MediaRef("awards/award-new/"+digest+"-gold.png"), f.ObjectKey)
	assert.Equal(t, int64(9), f.Size)
	assert.Equal(t, models.UploadPending, f.Status)

	h, ok := m.Handle(models.NewAwardID)
	require.True(t, ok)
	require.Len(t, h.Files(), 1)

	rows, err := repo.ListByEntity(ctx, models.NewAwardID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, f.ID, rows[0].ID)
}

func TestAttach_RejectsMissingFile(t *testing.T) {
	m, _ := newManager(t, &fakeTransport{})

	_, err := m.Attach(context.Background(), models.NewAwardID, filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)

	_, ok := m.Handle(models.NewAwardID)
	assert.False(t, ok)
}

func TestStart_NoHandle(t *testing.T) {
	m, _ := newManager(t, &fakeTransport{})

	done, err := m.Start(context.Background(), models.NewAwardID)
	require.NoError(t, err)

	err, open := <-done
	assert.False(t, open)
	assert.NoError(t, err)
}

func TestStart_TransfersAndReleases(t *testing.T) {
	tr := &fakeTransport{}
	m, repo := newManager(t, tr)
	ctx, cancel := context.WithCancel(context.Background())

	a, err := m.Attach(ctx, models.NewAwardID, writeFile(t, "a.png", "a"))
	require.NoError(t, err)
	b, err := m.Attach(ctx, models.NewAwardID, writeFile(t, "b.png", "b"))
	require.NoError(t, err)

	done, err := m.Start(ctx, models.NewAwardID)
	require.NoError(t, err)
	cancel()

	require.NoError(t, wait(t, done))
	assert.Equal(t, []models.MediaRef{a.ObjectKey, b.ObjectKey}, tr.Puts())
	assert.NotContains(t, tr.ctxOK, false, "transfer must not be cancelled with the caller")

	_, ok := m.Handle(models.NewAwardID)
	assert.False(t, ok, "handle is released after a clean transfer")

	unfinished, err := repo.ListUnfinished(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unfinished)
}

func TestStart_ReturnsBeforeTransferCompletes(t *testing.T) {
	tr := &fakeTransport{gate: make(chan struct{})}
	m, _ := newManager(t, tr)
	ctx := context.Background()

	_, err := m.Attach(ctx, models.NewAwardID, writeFile(t, "a.png", "a"))
	require.NoError(t, err)

	done, err := m.Start(ctx, models.NewAwardID)
	require.NoError(t, err)

	h, ok := m.Handle(models.NewAwardID)
	require.True(t, ok)
	assert.True(t, h.Running())

	_, err = m.Start(ctx, models.NewAwardID)
	require.ErrorIs(t, err, ErrTransferInProgress)

	_, err = m.Attach(ctx, models.NewAwardID, writeFile(t, "b.png", "b"))
	require.ErrorIs(t, err, ErrTransferInProgress)

	require.ErrorIs(t, h.DiscardAllFiles(ctx), ErrTransferInProgress)
	require.ErrorIs(t, m.Clear(ctx, models.NewAwardID), ErrTransferInProgress)

	close(tr.gate)
	require.NoError(t, wait(t, done))
}

func TestStart_FailureKeepsHandleForRetry(t *testing.T) {
	tr := &fakeTransport{fail: map[models.MediaRef]error{}}
	m, repo := newManager(t, tr)
	ctx := context.Background()

	good, err := m.Attach(ctx, "award-3", writeFile(t, "good.png", "g"))
	require.NoError(t, err)
	bad, err := m.Attach(ctx, "award-3", writeFile(t, "bad.png", "b"))
	require.NoError(t, err)
	tr.fail[bad.ObjectKey] = errors.New("403 Forbidden")

	done, err := m.Start(ctx, "award-3")
	require.NoError(t, err)
	err = wait(t, done)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403 Forbidden")

	h, ok := m.Handle("award-3")
	require.True(t, ok)
	assert.False(t, h.Running())

	unfinished, err := repo.ListUnfinished(ctx)
	require.NoError(t, err)
	require.Len(t, unfinished, 1)
	assert.Equal(t, bad.ID, unfinished[0].ID)
	assert.Equal(t, models.UploadFailed, unfinished[0].Status)

	// retry sends only what did not make it
	delete(tr.fail, bad.ObjectKey)
	done, err = m.Start(ctx, "award-3")
	require.NoError(t, err)
	require.NoError(t, wait(t, done))
	assert.Equal(t, []models.MediaRef{good.ObjectKey, bad.ObjectKey, bad.ObjectKey}, tr.Puts())
}

func TestDiscardAllFiles(t *testing.T) {
	m, repo := newManager(t, &fakeTransport{})
	ctx := context.Background()

	found, err := m.DiscardAllFiles(ctx, models.NewAwardID)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = m.Attach(ctx, models.NewAwardID, writeFile(t, "a.png", "a"))
	require.NoError(t, err)

	found, err = m.DiscardAllFiles(ctx, models.NewAwardID)
	require.NoError(t, err)
	assert.True(t, found)

	h, ok := m.Handle(models.NewAwardID)
	require.True(t, ok)
	assert.Empty(t, h.Files())

	rows, err := repo.ListByEntity(ctx, models.NewAwardID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClear(t *testing.T) {
	m, _ := newManager(t, &fakeTransport{})
	ctx := context.Background()

	require.ErrorIs(t, m.Clear(ctx, "award-1"), ErrNoHandle)

	_, err := m.Open(ctx, "award-1")
	require.NoError(t, err)
	require.NoError(t, m.Clear(ctx, "award-1"))

	_, err = m.Open(ctx, "award-1")
	require.NoError(t, err, "a cleared key can be opened again")
}

func TestRestore(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	for _, f := range []*models.UploadFile{
		{ID: "1", EntityKey: models.NewAwardID, LocalPath: "/x/a.png", ObjectKey: "k1", Digest: "d", Size: 1, Status: models.UploadUploading},
		{ID: "2", EntityKey: models.NewAwardID, LocalPath: "/x/b.png", ObjectKey: "k2", Digest: "d", Size: 1, Status: models.UploadPending},
		{ID: "3", EntityKey: "award-4", LocalPath: "/x/c.png", ObjectKey: "k3", Digest: "d", Size: 1, Status: models.UploadFailed},
		{ID: "4", EntityKey: "award-5", LocalPath: "/x/d.png", ObjectKey: "k4", Digest: "d", Size: 1, Status: models.UploadCompleted},
	} {
		require.NoError(t, repo.Upsert(ctx, f))
	}

	m := NewManager(repo, &fakeTransport{}, logging.Discard())
	restored, err := m.Restore(ctx)
	require.NoError(t, err)
	require.Len(t, restored, 3)
	for _, f := range restored {
		assert.NotEqual(t, models.UploadUploading, f.Status)
	}
	assert.Equal(t, models.LocalID("award-4"), restored[0].EntityKey)
	assert.Equal(t, models.NewAwardID, restored[2].EntityKey)

	h, ok := m.Handle(models.NewAwardID)
	require.True(t, ok)
	files := h.Files()
	require.Len(t, files, 2)
	for _, f := range files {
		assert.Equal(t, models.UploadPending, f.Status)
	}

	_, ok = m.Handle("award-5")
	assert.False(t, ok)

	_, err = m.Open(ctx, "award-4")
	require.ErrorIs(t, err, ErrHandleExists)
}

func TestObjectKey(t *testing.T) {
	got := ObjectKey("award-7", "abc", "/home/me/pics/gold medal.png")
	assert.Equal(t, models.MediaRef("awards/award-7/abc-gold medal.png"), got)
	assert.True(t, strings.HasPrefix(string(got), "awards/award-7/"))
}
