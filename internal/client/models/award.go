// Package models defines client-side data models used by the awards console.
package models

// ServerID is the canonical identifier assigned to an award by the remote side.
type ServerID int64

// MediaRef points at an uploaded media object (an object key in storage).
// The zero value means "no media".
type MediaRef string

// Award is an entry of the canonical award list.
type Award struct {
	// ID is assigned by the server once the award is created.
	ID ServerID `json:"id"`

	// LocalID is the display identifier derived from ID when the list is
	// stored. It is never sent to the server.
	LocalID LocalID `json:"-"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// PreviewRef references the uploaded preview image, if any.
	PreviewRef MediaRef `json:"preview,omitempty"`
}

// EditAward is the working copy of an award's editable fields. It lives in
// the EditAwards map between a start and a cancel/save of an edit.
type EditAward struct {
	ID          ServerID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PreviewRef  MediaRef `json:"preview,omitempty"`
}

// EditFrom returns a working copy of a.
func EditFrom(a Award) EditAward {
	return EditAward{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		PreviewRef:  a.PreviewRef,
	}
}

// NewAward is the pending-creation draft.
type NewAward struct {
	Name        string
	Description string
	PreviewRef  MediaRef
}
