package workflow

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/awardkeeper/internal/client/actions"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/client/store"
	"github.com/dmitrijs2005/awardkeeper/internal/logging"
)

type fakeRemote struct {
	mu    sync.Mutex
	calls []string

	awards    []models.Award
	config    models.RemoteConfig
	createErr error
	editErr   error
	deleteErr error
	listErr   error
	configErr error

	edited  models.EditAward
	deleted models.ServerID

	// beforeList runs at the start of every GetAwards call.
	beforeList func()
}

func (f *fakeRemote) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRemote) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRemote) CreateAward(_ context.Context, name, description string) (models.ServerID, error) {
	f.record("CreateAward")
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := models.ServerID(len(f.awards) + 100)
	f.awards = append(f.awards, models.Award{ID: id, Name: name, Description: description})
	return id, nil
}

func (f *fakeRemote) EditAward(_ context.Context, id models.ServerID, name, description string) error {
	f.record("EditAward")
	f.edited = models.EditAward{ID: id, Name: name, Description: description}
	return f.editErr
}

func (f *fakeRemote) DeleteAward(_ context.Context, id models.ServerID) error {
	f.record("DeleteAward")
	f.deleted = id
	return f.deleteErr
}

func (f *fakeRemote) GetAwards(context.Context) ([]models.Award, error) {
	f.record("GetAwards")
	if f.beforeList != nil {
		f.beforeList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Award(nil), f.awards...), nil
}

func (f *fakeRemote) GetConfig(context.Context) (models.RemoteConfig, error) {
	f.record("GetConfig")
	return f.config, f.configErr
}

type fakeUploads struct {
	startErr   error
	started    []models.LocalID
	handles    map[models.LocalID]int
	discardErr error
	discarded  []models.LocalID
}

func (f *fakeUploads) Start(_ context.Context, key models.LocalID) (<-chan error, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started = append(f.started, key)
	ch := make(chan error)
	close(ch)
	return ch, nil
}

func (f *fakeUploads) DiscardAllFiles(_ context.Context, key models.LocalID) (bool, error) {
	if _, ok := f.handles[key]; !ok {
		return false, nil
	}
	f.discarded = append(f.discarded, key)
	if f.discardErr != nil {
		return true, f.discardErr
	}
	f.handles[key] = 0
	return true, nil
}

type fakeConfirmer struct {
	answer bool
	err    error
	asked  []models.Confirmation
}

func (f *fakeConfirmer) Confirm(_ context.Context, c models.Confirmation) (bool, error) {
	f.asked = append(f.asked, c)
	return f.answer, f.err
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

// recorder is a Dispatcher backed by a real store that remembers every
// descriptor it was given.
type recorder struct {
	*store.Store
	mu   sync.Mutex
	seen []actions.Action
}

func newRecorder() *recorder {
	r := &recorder{Store: store.New(logging.Discard())}
	r.Subscribe(func(a actions.Action, _ store.State) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.seen = append(r.seen, a)
	})
	return r
}

func (r *recorder) Types() []actions.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]actions.Type, 0, len(r.seen))
	for _, a := range r.seen {
		out = append(out, a.Type)
	}
	return out
}

func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = nil
}

type fixture struct {
	remote    *fakeRemote
	uploads   *fakeUploads
	confirmer *fakeConfirmer
	notifier  *recordingNotifier
	store     *recorder
	exec      *Executor
}

func newFixture() *fixture {
	f := &fixture{
		remote:    &fakeRemote{},
		uploads:   &fakeUploads{handles: map[models.LocalID]int{}},
		confirmer: &fakeConfirmer{},
		notifier:  &recordingNotifier{},
		store:     newRecorder(),
	}
	f.exec = NewExecutor(Deps{
		Remote:    f.remote,
		Uploads:   f.uploads,
		Confirmer: f.confirmer,
		Notifier:  f.notifier,
		Logger:    logging.Discard(),
	})
	return f
}
