package models

import "time"

// UploadStatus is the transfer state of a staged file.
type UploadStatus string

const (
	UploadPending   UploadStatus = "pending"
	UploadUploading UploadStatus = "uploading"
	UploadCompleted UploadStatus = "completed"
	UploadFailed    UploadStatus = "failed"
)

// UploadFile is a local file staged on the upload handle of an entity.
type UploadFile struct {
	ID        string
	EntityKey LocalID
	LocalPath string
	ObjectKey MediaRef
	Digest    string
	Size      int64
	Status    UploadStatus
	CreatedAt time.Time
}
