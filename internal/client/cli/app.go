package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/awardkeeper/internal/client/actions"
	"github.com/dmitrijs2005/awardkeeper/internal/client/client"
	"github.com/dmitrijs2005/awardkeeper/internal/client/config"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/client/notify"
	"github.com/dmitrijs2005/awardkeeper/internal/client/repositories/uploads"
	"github.com/dmitrijs2005/awardkeeper/internal/client/store"
	"github.com/dmitrijs2005/awardkeeper/internal/client/upload"
	"github.com/dmitrijs2005/awardkeeper/internal/client/workflow"
	"github.com/dmitrijs2005/awardkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// remote is the award service as the console sees it.
type remote interface {
	workflow.Remote
	Ping(ctx context.Context) error
}

// uploadManager is the part of upload.Manager the console drives directly.
type uploadManager interface {
	workflow.Uploads
	Attach(ctx context.Context, key models.LocalID, path string) (*models.UploadFile, error)
	Restore(ctx context.Context) ([]models.UploadFile, error)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	remote   remote
	uploads  uploadManager
	store    *store.Store
	exec     *workflow.Executor
	notifier workflow.Notifier
	reader   *bufio.Reader
	out      io.Writer
	table    tableStyle
	closers  []func() error

	modeMu sync.Mutex
	mode   Mode
}

// appDeps are the collaborators of an App. NewApp builds the real ones.
type appDeps struct {
	remote    remote
	uploads   uploadManager
	notifier  workflow.Notifier
	confirmer workflow.Confirmer
	reader    *bufio.Reader
	out       io.Writer
}

func newApp(c *config.Config, log logging.Logger, d appDeps) *App {
	st := store.New(log)
	exec := workflow.NewExecutor(workflow.Deps{
		Remote:    d.remote,
		Uploads:   d.uploads,
		Confirmer: d.confirmer,
		Notifier:  d.notifier,
		Logger:    log,
	})
	return &App{
		config:   c,
		log:      log.With("module", "cli"),
		remote:   d.remote,
		uploads:  d.uploads,
		store:    st,
		exec:     exec,
		notifier: d.notifier,
		reader:   d.reader,
		out:      d.out,
		table:    tableStyleFor(d.out),
	}
}

// NewApp opens the local database, connects to the award service and wires
// the workflows to the terminal.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := client.Dial(ctx, client.Options{
		Transport:      c.Transport,
		Addr:           c.ServerEndpointAddr,
		AccessToken:    c.AccessToken,
		RequestTimeout: c.RequestTimeout,
		Logger:         log,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	transport, err := upload.NewS3Transport(ctx, upload.S3Config{
		Region:       c.S3.Region,
		Bucket:       c.S3.Bucket,
		BaseEndpoint: c.S3.BaseEndpoint,
		AccessKey:    c.S3.AccessKey,
		SecretKey:    c.S3.SecretKey,
	}, nil)
	if err != nil {
		_ = apiClient.Close()
		_ = db.Close()
		return nil, err
	}

	reader := bufio.NewReader(os.Stdin)
	app := newApp(c, log, appDeps{
		remote:    apiClient,
		uploads:   upload.NewManager(uploads.NewSQLiteRepository(db.DB), transport, log),
		notifier:  notify.NewTerminal(os.Stdout, log),
		confirmer: NewTerminalConfirmer(reader, os.Stdout),
		reader:    reader,
		out:       os.Stdout,
	})
	app.closers = []func() error{apiClient.Close, db.Close}
	return app, nil
}

// Run restores pending uploads, loads the remote config and the award list,
// then serves the REPL until the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.resumeUploads(ctx)
	a.load(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Award console (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// resumeUploads restores upload handles left over from the last session.
// Saved awards get their transfer restarted. Files staged for the award under
// construction go back on the draft and are sent by the next create.
func (a *App) resumeUploads(ctx context.Context) {
	files, err := a.uploads.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "restore uploads", "error", err)
		return
	}

	var keys []models.LocalID
	var draftPreview models.MediaRef
	for _, f := range files {
		if len(keys) == 0 || keys[len(keys)-1] != f.EntityKey {
			keys = append(keys, f.EntityKey)
		}
		if f.EntityKey == models.NewAwardID {
			draftPreview = f.ObjectKey
		}
	}

	for _, key := range keys {
		if key == models.NewAwardID {
			a.store.Dispatch(actions.SetNewAwardPreview(draftPreview))
			fmt.Fprintf(a.out, "draft preview %s restored\n", draftPreview)
			continue
		}
		done, err := a.uploads.Start(ctx, key)
		if err != nil {
			a.log.Warn(ctx, "resume upload", "key", key, "error", err)
			continue
		}
		fmt.Fprintf(a.out, "resuming upload for %s\n", key)
		go a.watchUpload(ctx, key, done)
	}
}

// load fetches config and awards. Failures are already reported to the user
// by the workflows.
func (a *App) load(ctx context.Context) {
	if err := workflow.Run(ctx, a.store, a.exec.GetConfig()); err != nil {
		a.log.Debug(ctx, "initial config load failed", "error", err)
	}
	if err := workflow.Run(ctx, a.store, a.exec.GetAwardsAll()); err != nil {
		a.log.Debug(ctx, "initial award load failed", "error", err)
	}
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.log.Info(ctx, "switched mode", "mode", mode)
	}
}

func (a *App) getStatus() string {
	st := a.store.GetState()
	s := string(st.UI.CurrentSection)
	if m := a.Mode(); m != "" {
		s = s + " " + string(m)
	}
	return fmt.Sprintf("(%s)", s)
}

// StartOnlineStatusWatcher pings the award service every interval until ctx
// is done and keeps the mode shown in the prompt up to date.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.remote.Ping(pingCtx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
