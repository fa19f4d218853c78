package uploads

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/common"
	"github.com/dmitrijs2005/awardkeeper/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectColumns = `select id, entity_key, local_path, object_key, digest, size, status, created_at from upload_files`

func (r *SQLiteRepository) Upsert(ctx context.Context, f *models.UploadFile) error {

	query := `INSERT INTO upload_files (id, entity_key, local_path, object_key, digest, size, status)
			values (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET entity_key = excluded.entity_key,
				local_path = excluded.local_path,
				object_key = excluded.object_key,
				digest = excluded.digest,
				size = excluded.size,
				status = excluded.status
	`
	_, err := r.db.ExecContext(ctx, query, f.ID, string(f.EntityKey), f.LocalPath, string(f.ObjectKey), f.Digest, f.Size, string(f.Status))
	if err != nil {
		return fmt.Errorf("failed to upsert upload file: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) ListByEntity(ctx context.Context, key models.LocalID) ([]*models.UploadFile, error) {
	return r.list(ctx, selectColumns+` where entity_key=? order by created_at, rowid`, string(key))
}

func (r *SQLiteRepository) ListUnfinished(ctx context.Context) ([]*models.UploadFile, error) {
	return r.list(ctx, selectColumns+` where status<>? order by entity_key, created_at, rowid`, string(models.UploadCompleted))
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]*models.UploadFile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error selecting upload files: %w", err)
	}
	defer rows.Close()

	var result []*models.UploadFile

	for rows.Next() {
		var (
			item              = &models.UploadFile{}
			key, object, stat string
		)
		err := rows.Scan(&item.ID, &key, &item.LocalPath, &object, &item.Digest, &item.Size, &stat, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		item.EntityKey = models.LocalID(key)
		item.ObjectKey = models.MediaRef(object)
		item.Status = models.UploadStatus(stat)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) SetStatus(ctx context.Context, id string, status models.UploadStatus) error {
	return setStatus(ctx, r.db, id, status)
}

// SetStatuses updates every file in ids or none of them.
func (r *SQLiteRepository) SetStatuses(ctx context.Context, ids []string, status models.UploadStatus) error {
	if len(ids) == 0 {
		return nil
	}
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, id := range ids {
			if err := setStatus(ctx, tx, id, status); err != nil {
				return err
			}
		}
		return nil
	})
}

func setStatus(ctx context.Context, db dbx.DBTX, id string, status models.UploadStatus) error {

	query := `update upload_files set status=? where id=?`
	result, err := db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update upload status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("upload file %s: %w", id, common.ErrorNotFound)
	}

	return nil
}

func (r *SQLiteRepository) DeleteByEntity(ctx context.Context, key models.LocalID) (int64, error) {

	result, err := r.db.ExecContext(ctx, `delete from upload_files where entity_key=?`, string(key))
	if err != nil {
		return 0, fmt.Errorf("failed to delete upload files: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
