package sqlite

import (
	"context"
	"database/sql"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// blobRelation resolves a Blob by its hash.
type blobRelation struct {
	b *types.Blob
}

func (r blobRelation) ref() *string { return &r.b.BlobID }

func (r blobRelation) insert(ctx context.Context, tx *sql.Tx) (string, error) {
	id := newUUID()
	err := insertRow(ctx, tx, "blobs",
		"INSERT INTO blobs (blob_id, hash) VALUES (?, ?)", id, r.b.Hash)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r blobRelation) lookup(ctx context.Context, tx *sql.Tx) (string, error) {
	return lookupID(ctx, tx, "blobs",
		"SELECT blob_id FROM blobs WHERE hash = ?", r.b.Hash)
}
