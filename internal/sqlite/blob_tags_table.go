package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// blobTagRelation resolves a BlobTag by its (blob_id, tag_id) pair. Both
// component identifiers must already be resolved; nested entities are never
// resolved implicitly.
type blobTagRelation struct {
	bt *types.BlobTag
}

func (r blobTagRelation) ref() *string { return &r.bt.BlobTagID }

func (r blobTagRelation) insert(ctx context.Context, tx *sql.Tx) (string, error) {
	if err := r.validate(); err != nil {
		return "", err
	}
	id := newUUID()
	err := insertRow(ctx, tx, "blob_tags",
		"INSERT INTO blob_tags (blob_tag_id, blob_id, tag_id) VALUES (?, ?, ?)",
		id, r.bt.BlobID, r.bt.TagID)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r blobTagRelation) lookup(ctx context.Context, tx *sql.Tx) (string, error) {
	if err := r.validate(); err != nil {
		return "", err
	}
	return lookupID(ctx, tx, "blob_tags",
		"SELECT blob_tag_id FROM blob_tags WHERE blob_id = ? AND tag_id = ?",
		r.bt.BlobID, r.bt.TagID)
}

func (r blobTagRelation) validate() error {
	if r.bt.BlobID == "" || r.bt.TagID == "" {
		return fmt.Errorf("blob tag needs resolved blob and tag ids: %w", types.ErrInvalidData)
	}
	return nil
}
