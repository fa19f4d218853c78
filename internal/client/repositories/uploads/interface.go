package uploads

import (
	"context"

	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
)

// Repository stores staged upload files.
type Repository interface {
	// Upsert inserts f or replaces the row with the same id.
	Upsert(ctx context.Context, f *models.UploadFile) error

	// ListByEntity returns the files staged for key, oldest first.
	ListByEntity(ctx context.Context, key models.LocalID) ([]*models.UploadFile, error)

	// ListUnfinished returns every file whose transfer has not completed.
	ListUnfinished(ctx context.Context) ([]*models.UploadFile, error)

	// SetStatus updates the transfer status of one file.
	SetStatus(ctx context.Context, id string, status models.UploadStatus) error

	// SetStatuses updates several files at once; a missing id leaves every
	// file unchanged.
	SetStatuses(ctx context.Context, ids []string, status models.UploadStatus) error

	// DeleteByEntity removes every file staged for key and reports how many
	// rows were removed.
	DeleteByEntity(ctx context.Context, key models.LocalID) (int64, error)
}
