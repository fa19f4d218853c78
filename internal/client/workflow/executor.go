package workflow

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/awardkeeper/internal/client/actions"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/client/store"
	"github.com/dmitrijs2005/awardkeeper/internal/logging"
)

// Deps are the collaborators of an Executor. All of them are required.
type Deps struct {
	Remote    Remote
	Uploads   Uploads
	Confirmer Confirmer
	Notifier  Notifier
	Logger    logging.Logger
}

// Executor builds the award workflows.
type Executor struct {
	remote    Remote
	uploads   Uploads
	confirmer Confirmer
	notifier  Notifier
	log       logging.Logger
}

func NewExecutor(d Deps) *Executor {
	return &Executor{
		remote:    d.Remote,
		uploads:   d.Uploads,
		confirmer: d.Confirmer,
		notifier:  d.Notifier,
		log:       d.Logger.With("module", "workflow"),
	}
}

// CreateAward starts the upload handle of the award under construction,
// creates the award remotely and reloads the list. On success the draft is
// reset and the new list stored; any failure ends in one error notification
// and no state change.
//
// Only the start of the upload is awaited, not the transfer itself.
func (e *Executor) CreateAward(name, description string) Task {
	return func(ctx context.Context, d Dispatcher) error {
		done, err := e.uploads.Start(ctx, models.NewAwardID)
		if err != nil {
			e.fail(ctx, "createAward", fmt.Errorf("upload start: %w", err))
			return nil
		}
		go e.watchTransfer(ctx, models.NewAwardID, done)

		id, err := e.remote.CreateAward(ctx, name, description)
		if err != nil {
			e.fail(ctx, "createAward", err)
			return nil
		}

		list, err := e.remote.GetAwards(ctx)
		if err != nil {
			e.fail(ctx, "createAward", fmt.Errorf("could not load awards: %w", err))
			return nil
		}

		d.Dispatch(actions.ResetNewAward())
		d.Dispatch(actions.SetAwards(list))

		e.log.Info(ctx, "award created", "id", id, "name", name)
		e.notifier.Success(ctx, createdMessage(name))
		return nil
	}
}

// DeleteAward asks for confirmation, then deletes the award shown as id and
// reloads the list. Declining (or a failing prompt) ends the workflow with no
// effects at all. The list is never reloaded after a failed delete. Once the
// delete went through it is reported as done even if the reload fails.
func (e *Executor) DeleteAward(id models.LocalID) Task {
	return func(ctx context.Context, d Dispatcher) error {
		ok, err := e.confirmer.Confirm(ctx, DeleteConfirmation)
		if err != nil {
			e.log.Warn(ctx, "confirmation failed", "op", "deleteAward", "id", id, "error", err)
			return nil
		}
		if !ok {
			e.log.Debug(ctx, "delete declined", "id", id)
			return nil
		}

		if err := e.remote.DeleteAward(ctx, id.MustServerID()); err != nil {
			e.log.Error(ctx, "workflow failed", "op", "deleteAward", "id", id, "error", err)
			e.notifier.Error(ctx, serializedErrorMessage(err))
			return nil
		}

		list, listErr := e.remote.GetAwards(ctx)
		if listErr == nil {
			d.Dispatch(actions.SetAwards(list))
		}

		e.log.Info(ctx, "award deleted", "id", id)
		e.notifier.Success(ctx, msgDeleted)
		e.refreshFailed(ctx, "deleteAward", listErr)
		return nil
	}
}

// SaveAward sends the working copy stored under editIndex. The copy is read
// from state when the task runs. On success the edit is closed before the
// list is reloaded; on failure the edit stays open for another attempt.
func (e *Executor) SaveAward(editIndex int) Task {
	return func(ctx context.Context, d Dispatcher) error {
		entry, ok := store.EditAwards(d.GetState())[editIndex]
		if !ok {
			e.fail(ctx, "saveAward", fmt.Errorf("no award is being edited at index %d", editIndex))
			return nil
		}

		if err := e.remote.EditAward(ctx, entry.ID, entry.Name, entry.Description); err != nil {
			e.fail(ctx, "saveAward", err)
			return nil
		}

		d.Dispatch(actions.CancelAwardEdit(editIndex))

		list, listErr := e.remote.GetAwards(ctx)
		if listErr == nil {
			d.Dispatch(actions.SetAwards(list))
		}

		e.log.Info(ctx, "award updated", "id", entry.ID)
		e.notifier.Success(ctx, updatedMessage(entry.Name))
		e.refreshFailed(ctx, "saveAward", listErr)
		return nil
	}
}

// GetAwardsAll replaces the canonical list with the remote one. A failure is
// logged, shown as an error notification and returned.
func (e *Executor) GetAwardsAll() Task {
	return func(ctx context.Context, d Dispatcher) error {
		list, err := e.remote.GetAwards(ctx)
		if err != nil {
			err = fmt.Errorf("could not load awards: %w", err)
			e.fail(ctx, "getAwardsAll", err)
			return err
		}
		d.Dispatch(actions.SetAwards(list))
		return nil
	}
}

// GetConfig replaces the stored config with the remote one. Failures are
// handled like those of GetAwardsAll.
func (e *Executor) GetConfig() Task {
	return func(ctx context.Context, d Dispatcher) error {
		cfg, err := e.remote.GetConfig(ctx)
		if err != nil {
			err = fmt.Errorf("could not load config: %w", err)
			e.fail(ctx, "getConfig", err)
			return err
		}
		d.Dispatch(actions.SetConfig(cfg))
		return nil
	}
}

// ResetNewAwardPreview drops the files staged for the award under
// construction, if any, and always clears the draft preview.
func (e *Executor) ResetNewAwardPreview() Task {
	return func(ctx context.Context, d Dispatcher) error {
		found, err := e.uploads.DiscardAllFiles(ctx, models.NewAwardID)
		switch {
		case err != nil:
			e.log.Warn(ctx, "discard staged files", "key", models.NewAwardID, "error", err)
		case !found:
			e.log.Debug(ctx, "no upload handle", "key", models.NewAwardID)
		}
		d.Dispatch(actions.SetNewAwardPreview(""))
		return nil
	}
}

func (e *Executor) fail(ctx context.Context, op string, err error) {
	e.log.Error(ctx, "workflow failed", "op", op, "error", err)
	e.notifier.Error(ctx, errorMessage(err))
}

// refreshFailed reports a reload that failed after the remote change itself
// succeeded. The stale list stays in place.
func (e *Executor) refreshFailed(ctx context.Context, op string, err error) {
	if err == nil {
		return
	}
	e.fail(ctx, op, fmt.Errorf("could not load awards: %w", err))
}

// watchTransfer logs the outcome of an upload nobody waits for.
func (e *Executor) watchTransfer(ctx context.Context, key models.LocalID, done <-chan error) {
	if done == nil {
		return
	}
	if err := <-done; err != nil {
		e.log.Warn(ctx, "upload failed", "key", key, "error", err)
		return
	}
	e.log.Debug(ctx, "upload finished", "key", key)
}
