package workflow

import (
	"context"

	"github.com/dmitrijs2005/awardkeeper/internal/client/actions"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/client/store"
)

// Remote is the request/response channel to the award service.
type Remote interface {
	CreateAward(ctx context.Context, name, description string) (models.ServerID, error)
	EditAward(ctx context.Context, id models.ServerID, name, description string) error
	DeleteAward(ctx context.Context, id models.ServerID) error
	GetAwards(ctx context.Context) ([]models.Award, error)
	GetConfig(ctx context.Context) (models.RemoteConfig, error)
}

// Uploads is the part of the upload lifecycle manager the workflows drive.
type Uploads interface {
	// Start launches the transfer of the handle registered for key and
	// returns once it is under way. The channel reports the outcome of the
	// transfer itself.
	Start(ctx context.Context, key models.LocalID) (<-chan error, error)

	// DiscardAllFiles drops every staged file of the handle for key. found
	// is false when no handle exists.
	DiscardAllFiles(ctx context.Context, key models.LocalID) (found bool, err error)
}

// Confirmer asks the user to confirm a destructive operation. It blocks
// until the user answers.
type Confirmer interface {
	Confirm(ctx context.Context, c models.Confirmation) (bool, error)
}

// Notifier shows transient messages. Calls never fail.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Dispatcher is what a running Task sees of the store.
type Dispatcher interface {
	Dispatch(a actions.Action)
	GetState() store.State
}
