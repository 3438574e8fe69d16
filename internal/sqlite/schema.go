package sqlite

import (
	"database/sql"
	"fmt"
)

// Schema DDL. Natural keys carry UNIQUE constraints; the get-or-create
// protocol depends on them.
const (
	createBlobs = `CREATE TABLE IF NOT EXISTS blobs (
    blob_id TEXT PRIMARY KEY,
    hash TEXT NOT NULL UNIQUE
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    tag_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);`

	createBlobTags = `CREATE TABLE IF NOT EXISTS blob_tags (
    blob_tag_id TEXT PRIMARY KEY,
    blob_id TEXT NOT NULL,
    tag_id TEXT NOT NULL,
    UNIQUE (blob_id, tag_id),
    FOREIGN KEY (blob_id) REFERENCES blobs(blob_id),
    FOREIGN KEY (tag_id) REFERENCES tags(tag_id)
);`
)

// Index DDL for the reverse query.
const (
	idxBlobTagsTag = `CREATE INDEX IF NOT EXISTS idx_blob_tags_tag ON blob_tags(tag_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createBlobs,
	createTags,
	createBlobTags,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxBlobTagsTag,
}

// createSchema bootstraps the tables on a fresh database. It never alters
// existing tables.
func createSchema(db *sql.DB) error {
	for _, stmt := range append(schemaDDL, indexDDL...) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
