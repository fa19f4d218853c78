package store

import (
	"github.com/dmitrijs2005/awardkeeper/internal/client/actions"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
)

// Applier folds one descriptor into state. A payload of the wrong type
// leaves state unchanged.
type Applier func(State, actions.Action) State

// Appliers maps every descriptor kind to its applier.
var Appliers = map[actions.Type]Applier{
	actions.AwardEditDidCancel:           awardEditDidCancel,
	actions.AwardDidEdit:                 awardDidEdit,
	actions.AwardEditDidStart:            awardEditDidStart,
	actions.AwardEditIndexDidUpdate:      awardEditIndexDidUpdate,
	actions.AwardCreationStateDidUpdate:  awardCreationStateDidUpdate,
	actions.AwardPreviewDidChange:        awardPreviewDidChange,
	actions.AwardsDidUpdate:              awardsDidUpdate,
	actions.ConfigDidUpdate:              configDidUpdate,
	actions.NewAwardNameDidChange:        newAwardNameDidChange,
	actions.NewAwardDescriptionDidChange: newAwardDescriptionDidChange,
	actions.NewAwardPreviewDidChange:     newAwardPreviewDidChange,
	actions.NewAwardWillReset:            newAwardWillReset,
	actions.SectionDidUpdate:             sectionDidUpdate,
}

func awardEditDidCancel(st State, a actions.Action) State {
	idx, ok := a.Payload.(int)
	if !ok {
		return st
	}
	st = st.deleteEdit(idx)
	if st.UI.EditIndex == idx {
		st.UI.EditIndex = models.NoEditIndex
	}
	return st
}

func awardDidEdit(st State, a actions.Action) State {
	p, ok := a.Payload.(actions.EditPayload)
	if !ok {
		return st
	}
	if _, open := st.EditAwards[p.EditIndex]; !open {
		return st
	}
	return st.setEdit(p.EditIndex, p.Fields)
}

func awardEditDidStart(st State, a actions.Action) State {
	p, ok := a.Payload.(actions.EditStartPayload)
	if !ok {
		return st
	}
	return st.setEdit(p.EditIndex, models.EditFrom(p.Award))
}

func awardEditIndexDidUpdate(st State, a actions.Action) State {
	idx, ok := a.Payload.(int)
	if !ok {
		return st
	}
	st.UI.EditIndex = idx
	return st
}

func awardCreationStateDidUpdate(st State, a actions.Action) State {
	cs, ok := a.Payload.(models.CreationState)
	if !ok {
		return st
	}
	st.UI.AwardCreationState = cs
	return st
}

func awardPreviewDidChange(st State, a actions.Action) State {
	p, ok := a.Payload.(actions.PreviewPayload)
	if !ok {
		return st
	}
	e, open := st.EditAwards[p.EditIndex]
	if !open {
		return st
	}
	e.PreviewRef = p.Preview
	return st.setEdit(p.EditIndex, e)
}

func awardsDidUpdate(st State, a actions.Action) State {
	list, ok := a.Payload.([]models.Award)
	if !ok {
		return st
	}
	return st.setAwards(list)
}

func configDidUpdate(st State, a actions.Action) State {
	cfg, ok := a.Payload.(models.RemoteConfig)
	if !ok {
		return st
	}
	st.Config = cfg
	return st
}

func newAwardNameDidChange(st State, a actions.Action) State {
	name, ok := a.Payload.(string)
	if !ok {
		return st
	}
	st.UI.NewAward.Name = name
	return st
}

func newAwardDescriptionDidChange(st State, a actions.Action) State {
	desc, ok := a.Payload.(string)
	if !ok {
		return st
	}
	st.UI.NewAward.Description = desc
	return st
}

func newAwardPreviewDidChange(st State, a actions.Action) State {
	ref, ok := a.Payload.(models.MediaRef)
	if !ok {
		return st
	}
	st.UI.NewAward.PreviewRef = ref
	return st
}

func newAwardWillReset(st State, _ actions.Action) State {
	st.UI.NewAward = models.NewAward{}
	st.UI.AwardCreationState = models.CreationIdle
	return st
}

func sectionDidUpdate(st State, a actions.Action) State {
	sec, ok := a.Payload.(models.Section)
	if !ok {
		return st
	}
	st.UI.CurrentSection = sec
	return st
}
