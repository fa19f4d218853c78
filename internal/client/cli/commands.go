package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/awardkeeper/internal/client/actions"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/client/store"
	"github.com/dmitrijs2005/awardkeeper/internal/client/workflow"
)

var (
	errUsage      = errors.New("usage")
	errNoEdit     = errors.New("no award is being edited")
	errNoDraft    = errors.New("nothing to create, start with 'new'")
	errNoSuchID   = errors.New("no such award")
	errBadSection = errors.New("unknown section")
)

func (a *App) usage(text string) error {
	fmt.Fprintln(a.out, "Usage:", text)
	return errUsage
}

func (a *App) report(err error) error {
	fmt.Fprintln(a.out, "error:", err)
	return err
}

// List prints the canonical award list, marking awards being edited.
func (a *App) List(ctx context.Context) error {
	st := a.store.GetState()
	fmt.Fprintln(a.out, renderAwards(store.Awards(st), store.EditAwards(st), a.table))

	if draft := store.NewAward(st); draft.Name != "" {
		fmt.Fprintf(a.out, "draft: %s (%s)\n", draft.Name, st.UI.AwardCreationState)
	}
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	return workflow.Run(ctx, a.store, a.exec.GetAwardsAll())
}

// Config prints the remote config, or the value at path when one is given.
func (a *App) Config(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if err := workflow.Run(ctx, a.store, a.exec.GetConfig()); err != nil {
			return err
		}
	}

	cfg := a.store.GetState().Config
	if cfg.IsZero() {
		fmt.Fprintln(a.out, "(no config loaded)")
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, string(cfg.Raw()))
		return nil
	}

	r := cfg.Get(args[0])
	if !r.Exists() {
		fmt.Fprintf(a.out, "%s: not set\n", args[0])
		return nil
	}
	fmt.Fprintln(a.out, r.String())
	return nil
}

func (a *App) Section(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("section awards|create|settings")
	}
	sec := models.Section(args[0])
	switch sec {
	case models.SectionAwards, models.SectionCreate, models.SectionSettings:
	default:
		return a.report(fmt.Errorf("%w: %s", errBadSection, args[0]))
	}
	a.store.Dispatch(actions.SetSection(sec))
	return nil
}

// New fills the draft of the award under construction.
func (a *App) New(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Award name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return a.report(errors.New("name must not be empty"))
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	a.store.Dispatch(actions.SetSection(models.SectionCreate))
	a.store.Dispatch(actions.SetNewAwardName(name))
	a.store.Dispatch(actions.SetNewAwardDescription(description))
	a.store.Dispatch(actions.SetAwardCreationState(models.CreationDraft))
	return nil
}

// Attach stages a preview image for the award under construction. It is
// uploaded when the award is created.
func (a *App) Attach(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("attach <path>")
	}
	f, err := a.uploads.Attach(ctx, models.NewAwardID, args[0])
	if err != nil {
		return a.report(err)
	}
	a.store.Dispatch(actions.SetNewAwardPreview(f.ObjectKey))
	fmt.Fprintf(a.out, "staged %s (%d bytes)\n", f.ObjectKey, f.Size)
	return nil
}

func (a *App) PreviewReset(ctx context.Context) error {
	return workflow.Run(ctx, a.store, a.exec.ResetNewAwardPreview())
}

// Create submits the draft. A draft that fails to submit stays a draft.
func (a *App) Create(ctx context.Context) error {
	draft := store.NewAward(a.store.GetState())
	if draft.Name == "" {
		return a.report(errNoDraft)
	}

	a.store.Dispatch(actions.SetAwardCreationState(models.CreationSubmitting))
	if err := workflow.Run(ctx, a.store, a.exec.CreateAward(draft.Name, draft.Description)); err != nil {
		return err
	}
	if a.store.GetState().UI.AwardCreationState == models.CreationSubmitting {
		a.store.Dispatch(actions.SetAwardCreationState(models.CreationDraft))
	}
	return nil
}

// Edit opens the award for editing and asks for new field values. An empty
// answer keeps the current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("edit <id>")
	}
	id, err := models.ParseLocalID(args[0])
	if err != nil {
		return a.report(err)
	}

	st := a.store.GetState()
	idx := -1
	for i, aw := range store.Awards(st) {
		if aw.LocalID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return a.report(fmt.Errorf("%w: %s", errNoSuchID, id))
	}
	award := store.Awards(st)[idx]

	// One award is edited at a time; switching drops the previous working copy.
	if prev, _, err := a.currentEdit(); err == nil && prev != idx {
		a.store.Dispatch(actions.CancelAwardEdit(prev))
	}
	a.store.Dispatch(actions.StartAwardEdit(idx, award))
	a.store.Dispatch(actions.SetAwardEditIndex(idx))

	fields := models.EditFrom(award)
	if fields.Name, err = GetTextOrKeep(a.reader, "Name", fields.Name, a.out); err != nil {
		return err
	}
	if fields.Description, err = GetTextOrKeep(a.reader, "Description", fields.Description, a.out); err != nil {
		return err
	}

	a.store.Dispatch(actions.EditAward(idx, fields))
	fmt.Fprintf(a.out, "editing %s, 'save' to send or 'cancel' to drop\n", id)
	return nil
}

// Preview attaches a new preview image to the award being edited and starts
// its upload right away.
func (a *App) Preview(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("preview <path>")
	}
	idx, entry, err := a.currentEdit()
	if err != nil {
		return a.report(err)
	}

	key := models.LocalIDOf(entry.ID)
	f, err := a.uploads.Attach(ctx, key, args[0])
	if err != nil {
		return a.report(err)
	}
	a.store.Dispatch(actions.SetAwardPreview(idx, f.ObjectKey))

	done, err := a.uploads.Start(ctx, key)
	if err != nil {
		return a.report(err)
	}
	go a.watchUpload(ctx, key, done)
	return nil
}

func (a *App) watchUpload(ctx context.Context, key models.LocalID, done <-chan error) {
	if err := <-done; err != nil {
		a.log.Warn(ctx, "preview upload failed", "key", key, "error", err)
		a.notifier.Error(ctx, "Preview upload failed: "+err.Error())
	}
}

func (a *App) Save(ctx context.Context) error {
	idx, _, err := a.currentEdit()
	if err != nil {
		return a.report(err)
	}
	return workflow.Run(ctx, a.store, a.exec.SaveAward(idx))
}

func (a *App) Cancel(ctx context.Context) error {
	idx, _, err := a.currentEdit()
	if err != nil {
		return a.report(err)
	}
	a.store.Dispatch(actions.CancelAwardEdit(idx))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete <id>")
	}
	id, err := models.ParseLocalID(args[0])
	if err != nil {
		return a.report(err)
	}
	return workflow.Run(ctx, a.store, a.exec.DeleteAward(id))
}

func (a *App) currentEdit() (int, models.EditAward, error) {
	st := a.store.GetState()
	idx := st.UI.EditIndex
	entry, ok := store.EditAwards(st)[idx]
	if idx == models.NoEditIndex || !ok {
		return 0, models.EditAward{}, errNoEdit
	}
	return idx, entry, nil
}
