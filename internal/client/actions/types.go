package actions

import "github.com/dmitrijs2005/awardkeeper/internal/client/models"

// Type tags an action descriptor.
type Type string

const (
	AwardEditDidCancel           Type = "AWARD_EDIT_DID_CANCEL"
	AwardDidEdit                 Type = "AWARD_DID_EDIT"
	AwardEditDidStart            Type = "AWARD_EDIT_DID_START"
	AwardEditIndexDidUpdate      Type = "AWARD_EDIT_INDEX_DID_UPDATE"
	AwardCreationStateDidUpdate  Type = "AWARD_CREATION_STATE_DID_UPDATE"
	AwardPreviewDidChange        Type = "AWARD_PREVIEW_DID_CHANGE"
	AwardsDidUpdate              Type = "AWARDS_DID_UPDATE"
	ConfigDidUpdate              Type = "CONFIG_DID_UPDATE"
	NewAwardNameDidChange        Type = "NEW_AWARD_NAME_DID_CHANGE"
	NewAwardDescriptionDidChange Type = "NEW_AWARD_DESCRIPTION_DID_CHANGE"
	NewAwardPreviewDidChange     Type = "NEW_AWARD_PREVIEW_DID_CHANGE"
	NewAwardWillReset            Type = "NEW_AWARD_WILL_RESET"
	SectionDidUpdate             Type = "SECTION_DID_UPDATE"
)

// Types lists every kind of the vocabulary.
var Types = []Type{
	AwardEditDidCancel,
	AwardDidEdit,
	AwardEditDidStart,
	AwardEditIndexDidUpdate,
	AwardCreationStateDidUpdate,
	AwardPreviewDidChange,
	AwardsDidUpdate,
	ConfigDidUpdate,
	NewAwardNameDidChange,
	NewAwardDescriptionDidChange,
	NewAwardPreviewDidChange,
	NewAwardWillReset,
	SectionDidUpdate,
}

// Action is a descriptor: a kind and its payload. Payload types per kind:
//
//	AwardEditDidCancel           int (edit index)
//	AwardDidEdit                 EditPayload
//	AwardEditDidStart            EditStartPayload
//	AwardEditIndexDidUpdate      int
//	AwardCreationStateDidUpdate  models.CreationState
//	AwardPreviewDidChange        PreviewPayload
//	AwardsDidUpdate              []models.Award
//	ConfigDidUpdate              models.RemoteConfig
//	NewAward*DidChange           string / models.MediaRef
//	NewAwardWillReset            nil
//	SectionDidUpdate             models.Section
type Action struct {
	Type    Type
	Payload any
}

type (
	// EditPayload carries updated working-copy fields.
	EditPayload struct {
		EditIndex int
		Fields    models.EditAward
	}

	// EditStartPayload carries the award an edit starts from.
	EditStartPayload struct {
		EditIndex int
		Award     models.Award
	}

	// PreviewPayload sets (or, with an empty ref, clears) the preview of an
	// in-progress edit.
	PreviewPayload struct {
		EditIndex int
		Preview   models.MediaRef
	}
)
