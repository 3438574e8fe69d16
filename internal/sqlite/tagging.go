package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bobg/sqlutil"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

// Tag links every name to the blob with the given hash in one transaction
// and returns the association IDs in input order. All validation happens
// before the transaction opens, so a rejected call writes nothing.
func (b *Backend) Tag(ctx context.Context, hash string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("tagging %s: no tag names: %w", hash, types.ErrUsage)
	}
	if err := types.ValidateHash(hash); err != nil {
		return nil, fmt.Errorf("tagging %q: %w", hash, err)
	}
	for _, name := range names {
		if err := types.ValidateTagName(name); err != nil {
			return nil, fmt.Errorf("tag name %q: %w", name, err)
		}
	}

	ids := make([]string, 0, len(names))
	err := b.Update(ctx, func(tx *sql.Tx) error {
		blob := &types.Blob{Hash: hash}
		blobID, err := resolve(ctx, tx, blobRelation{blob})
		if err != nil {
			return err
		}

		// Repeated names reuse the memoized tag.
		seen := make(map[string]*types.Tag, len(names))
		for _, name := range names {
			tag, ok := seen[name]
			if !ok {
				tag = &types.Tag{Name: name}
				seen[name] = tag
			}
			tagID, err := resolve(ctx, tx, tagRelation{tag})
			if err != nil {
				return err
			}

			link := &types.BlobTag{BlobID: blobID, TagID: tagID}
			id, err := resolve(ctx, tx, blobTagRelation{link})
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// TagsOf returns the sorted tag names of the blob with the given hash.
func (b *Backend) TagsOf(ctx context.Context, hash string) ([]string, error) {
	if err := types.ValidateHash(hash); err != nil {
		return nil, fmt.Errorf("tags of %q: %w", hash, err)
	}

	names := []string{}
	err := b.View(ctx, func(tx *sql.Tx) error {
		const q = `SELECT t.name FROM tags t
			JOIN blob_tags bt ON bt.tag_id = t.tag_id
			JOIN blobs b ON b.blob_id = bt.blob_id
			WHERE b.hash = ?
			ORDER BY t.name`
		return sqlutil.ForQueryRows(ctx, tx, q, hash, func(name string) {
			names = append(names, name)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("querying tags of %s: %w", hash, err)
	}
	return names, nil
}

// Tagged returns every blob that carries any of the named tags, with the
// blob's complete tag set. Blobs are ordered by hash and tags by name.
func (b *Backend) Tagged(ctx context.Context, names []string) ([]types.TaggedBlob, error) {
	results := []types.TaggedBlob{}
	if len(names) == 0 {
		return results, nil
	}

	err := b.View(ctx, func(tx *sql.Tx) error {
		placeholders := make([]string, len(names))
		args := make([]any, len(names))
		for i, name := range names {
			placeholders[i] = "?"
			args[i] = name
		}
		q := `SELECT DISTINCT b.blob_id, b.hash FROM blobs b
			JOIN blob_tags bt ON bt.blob_id = b.blob_id
			JOIN tags t ON t.tag_id = bt.tag_id
			WHERE t.name IN (` + strings.Join(placeholders, ",") + `)
			ORDER BY b.hash`

		var blobs []types.Blob
		args = append(args, func(id, hash string) {
			blobs = append(blobs, types.Blob{BlobID: id, Hash: hash})
		})
		if err := sqlutil.ForQueryRows(ctx, tx, q, args...); err != nil {
			return fmt.Errorf("finding tagged blobs: %w", err)
		}

		for _, blob := range blobs {
			tags, err := tagsOfBlob(ctx, tx, blob.BlobID)
			if err != nil {
				return err
			}
			results = append(results, types.TaggedBlob{Hash: blob.Hash, Tags: tags})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// tagsOfBlob returns the full tag set of one blob row.
func tagsOfBlob(ctx context.Context, tx *sql.Tx, blobID string) ([]string, error) {
	const q = `SELECT t.name FROM tags t
		JOIN blob_tags bt ON bt.tag_id = t.tag_id
		WHERE bt.blob_id = ?
		ORDER BY t.name`

	var names []string
	err := sqlutil.ForQueryRows(ctx, tx, q, blobID, func(name string) {
		names = append(names, name)
	})
	if err != nil {
		return nil, fmt.Errorf("loading tags of blob %s: %w", blobID, err)
	}
	return names, nil
}
