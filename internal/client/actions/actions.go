package actions

import "github.com/dmitrijs2005/awardkeeper/internal/client/models"

// CancelAwardEdit discards the in-progress edit at editIndex.
func CancelAwardEdit(editIndex int) Action {
	return Action{Type: AwardEditDidCancel, Payload: editIndex}
}

// EditAward replaces the working-copy fields of the edit at editIndex.
func EditAward(editIndex int, fields models.EditAward) Action {
	return Action{Type: AwardDidEdit, Payload: EditPayload{EditIndex: editIndex, Fields: fields}}
}

func ResetNewAward() Action {
	return Action{Type: NewAwardWillReset}
}

func SetAwardCreationState(state models.CreationState) Action {
	return Action{Type: AwardCreationStateDidUpdate, Payload: state}
}

func SetAwardEditIndex(index int) Action {
	return Action{Type: AwardEditIndexDidUpdate, Payload: index}
}

// SetAwardPreview sets the preview of the edit at editIndex. An empty ref
// clears it.
func SetAwardPreview(editIndex int, preview models.MediaRef) Action {
	return Action{Type: AwardPreviewDidChange, Payload: PreviewPayload{EditIndex: editIndex, Preview: preview}}
}

// SetAwards replaces the canonical award list. The slice is copied so later
// changes by the caller do not leak into the descriptor.
func SetAwards(awards []models.Award) Action {
	list := make([]models.Award, len(awards))
	copy(list, awards)
	return Action{Type: AwardsDidUpdate, Payload: list}
}

func SetConfig(cfg models.RemoteConfig) Action {
	return Action{Type: ConfigDidUpdate, Payload: cfg}
}

func SetNewAwardDescription(description string) Action {
	return Action{Type: NewAwardDescriptionDidChange, Payload: description}
}

func SetNewAwardName(name string) Action {
	return Action{Type: NewAwardNameDidChange, Payload: name}
}

func SetNewAwardPreview(preview models.MediaRef) Action {
	return Action{Type: NewAwardPreviewDidChange, Payload: preview}
}

func SetSection(section models.Section) Action {
	return Action{Type: SectionDidUpdate, Payload: section}
}

// StartAwardEdit begins editing a copy of award under editIndex.
func StartAwardEdit(editIndex int, award models.Award) Action {
	return Action{Type: AwardEditDidStart, Payload: EditStartPayload{EditIndex: editIndex, Award: award}}
}
