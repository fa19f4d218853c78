package store

import "github.com/dmitrijs2005/awardkeeper/internal/client/models"

// EditAwards returns the in-progress edits keyed by edit index.
func EditAwards(st State) map[int]models.EditAward {
	return st.EditAwards
}

func Awards(st State) []models.Award {
	return st.Awards
}

func NewAward(st State) models.NewAward {
	return st.UI.NewAward
}

// AwardByLocalID finds an award of the canonical list by its display id.
func AwardByLocalID(st State, id models.LocalID) (models.Award, bool) {
	for _, a := range st.Awards {
		if a.LocalID == id {
			return a, true
		}
	}
	return models.Award{}, false
}
