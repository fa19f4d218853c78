// Package uploads persists the files staged on upload handles.
//
// # Overview
//
// Each row of upload_files is one local file attached to the handle of an
// entity (an award's display id, or the reserved id of the award under
// construction) together with its object key, digest and transfer status.
// The upload manager writes through this repository so that handles with
// unfinished transfers can be rebuilt when the console restarts.
//
// Key Types
//
//   - type Repository: contract used by the upload manager
//   - type SQLiteRepository: SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := uploads.NewSQLiteRepository(db)
//	_ = repo.Upsert(ctx, file)
//	files, _ := repo.ListByEntity(ctx, key)
//	_ = repo.SetStatus(ctx, file.ID, models.UploadCompleted)
package uploads
