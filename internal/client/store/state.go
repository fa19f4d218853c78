package store

import (
	"maps"
	"slices"

	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
)

// State is an immutable snapshot. Appliers return modified copies; the maps
// and slices of a published snapshot are never written to.
type State struct {
	// Awards is the canonical list, replaced only as a whole.
	Awards []models.Award

	// EditAwards holds in-progress working copies keyed by edit index.
	EditAwards map[int]models.EditAward

	Config models.RemoteConfig
	UI     models.UIState
}

// NewState returns the initial state.
func NewState() State {
	return State{
		EditAwards: map[int]models.EditAward{},
		UI: models.UIState{
			CurrentSection:     models.SectionAwards,
			AwardCreationState: models.CreationIdle,
			EditIndex:          models.NoEditIndex,
		},
	}
}

func (s State) setAwards(list []models.Award) State {
	s.Awards = slices.Clone(list)
	for i := range s.Awards {
		s.Awards[i].LocalID = models.LocalIDOf(s.Awards[i].ID)
	}
	return s
}

func (s State) setEdit(idx int, e models.EditAward) State {
	m := maps.Clone(s.EditAwards)
	if m == nil {
		m = map[int]models.EditAward{}
	}
	m[idx] = e
	s.EditAwards = m
	return s
}

func (s State) deleteEdit(idx int) State {
	if _, ok := s.EditAwards[idx]; !ok {
		return s
	}
	m := maps.Clone(s.EditAwards)
	delete(m, idx)
	s.EditAwards = m
	return s
}
