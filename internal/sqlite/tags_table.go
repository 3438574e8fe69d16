package sqlite

import (
	"context"
	"database/sql"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// tagRelation resolves a Tag by its name.
type tagRelation struct {
	t *types.Tag
}

func (r tagRelation) ref() *string { return &r.t.TagID }

func (r tagRelation) insert(ctx context.Context, tx *sql.Tx) (string, error) {
	id := newUUID()
	err := insertRow(ctx, tx, "tags",
		"INSERT INTO tags (tag_id, name) VALUES (?, ?)", id, r.t.Name)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r tagRelation) lookup(ctx context.Context, tx *sql.Tx) (string, error) {
	return lookupID(ctx, tx, "tags",
		"SELECT tag_id FROM tags WHERE name = ?", r.t.Name)
}
