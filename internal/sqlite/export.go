package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bobg/sqlutil"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// ImportStats counts the records read by Import, per file.
type ImportStats struct {
	Blobs    int
	Tags     int
	BlobTags int
}

// Export writes the blobs, tags, and blob_tags tables to JSONL files in dir.
// Each file is replaced atomically.
func (b *Backend) Export(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	var (
		blobs []blobJSON
		tags  []tagJSON
		links []blobTagJSON
	)
	err := b.View(ctx, func(tx *sql.Tx) error {
		err := sqlutil.ForQueryRows(ctx, tx, "SELECT blob_id, hash FROM blobs ORDER BY hash",
			func(id, hash string) {
				blobs = append(blobs, blobJSON{BlobID: id, Hash: hash})
			})
		if err != nil {
			return fmt.Errorf("exporting blobs: %w", err)
		}
		err = sqlutil.ForQueryRows(ctx, tx, "SELECT tag_id, name FROM tags ORDER BY name",
			func(id, name string) {
				tags = append(tags, tagJSON{TagID: id, Name: name})
			})
		if err != nil {
			return fmt.Errorf("exporting tags: %w", err)
		}
		err = sqlutil.ForQueryRows(ctx, tx, "SELECT blob_tag_id, blob_id, tag_id FROM blob_tags ORDER BY blob_tag_id",
			func(id, blobID, tagID string) {
				links = append(links, blobTagJSON{BlobTagID: id, BlobID: blobID, TagID: tagID})
			})
		if err != nil {
			return fmt.Errorf("exporting blob_tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := writeRecords(filepath.Join(dir, blobsFile), blobs); err != nil {
		return err
	}
	if err := writeRecords(filepath.Join(dir, tagsFile), tags); err != nil {
		return err
	}
	return writeRecords(filepath.Join(dir, blobTagsFile), links)
}

// Import loads JSONL files written by Export from dir. Records are resolved
// by natural key, so rows already present are reused and importing the same
// files twice adds nothing. Identifiers in blob_tags.jsonl are mapped to the
// local identifiers of the referenced blob and tag. The import runs in one
// transaction; a dangling reference aborts it.
func (b *Backend) Import(ctx context.Context, dir string) (ImportStats, error) {
	var stats ImportStats

	blobRecs, err := readRecords[blobJSON](filepath.Join(dir, blobsFile))
	if err != nil {
		return stats, err
	}
	tagRecs, err := readRecords[tagJSON](filepath.Join(dir, tagsFile))
	if err != nil {
		return stats, err
	}
	linkRecs, err := readRecords[blobTagJSON](filepath.Join(dir, blobTagsFile))
	if err != nil {
		return stats, err
	}

	err = b.Update(ctx, func(tx *sql.Tx) error {
		blobIDs := make(map[string]string, len(blobRecs))
		for _, rec := range blobRecs {
			if types.ValidateHash(rec.Hash) != nil {
				continue
			}
			id, err := resolve(ctx, tx, blobRelation{&types.Blob{Hash: rec.Hash}})
			if err != nil {
				return err
			}
			blobIDs[rec.BlobID] = id
			stats.Blobs++
		}

		tagIDs := make(map[string]string, len(tagRecs))
		for _, rec := range tagRecs {
			if types.ValidateTagName(rec.Name) != nil {
				continue
			}
			id, err := resolve(ctx, tx, tagRelation{&types.Tag{Name: rec.Name}})
			if err != nil {
				return err
			}
			tagIDs[rec.TagID] = id
			stats.Tags++
		}

		for _, rec := range linkRecs {
			blobID, ok := blobIDs[rec.BlobID]
			if !ok {
				return fmt.Errorf("blob tag %s references unknown blob %s: %w", rec.BlobTagID, rec.BlobID, types.ErrInvalidData)
			}
			tagID, ok := tagIDs[rec.TagID]
			if !ok {
				return fmt.Errorf("blob tag %s references unknown tag %s: %w", rec.BlobTagID, rec.TagID, types.ErrInvalidData)
			}
			link := &types.BlobTag{BlobID: blobID, TagID: tagID}
			if _, err := resolve(ctx, tx, blobTagRelation{link}); err != nil {
				return err
			}
			stats.BlobTags++
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, err
	}
	return stats, nil
}
