package models

// Section names the active console section.
type Section string

const (
	SectionAwards   Section = "awards"
	SectionCreate   Section = "create"
	SectionSettings Section = "settings"
)

// CreationState tracks the create-award sub-workflow.
type CreationState string

const (
	CreationIdle       CreationState = "idle"
	CreationDraft      CreationState = "draft"
	CreationSubmitting CreationState = "submitting"
)

// NoEditIndex marks that no award is being edited.
const NoEditIndex = -1

// UIState is presentational state owned by the award descriptors.
type UIState struct {
	CurrentSection     Section
	AwardCreationState CreationState
	NewAward           NewAward
	EditIndex          int
}

// Confirmation describes a blocking yes/no question put to the user.
type Confirmation struct {
	Title            string
	Message          string
	AffirmativeLabel string
	Size             string
}
