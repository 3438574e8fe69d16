package sqlite

// JSON record structures for the export files. Field names match the
// column names.

// blobJSON represents a blob in blobs.jsonl.
type blobJSON struct {
	BlobID string `json:"blob_id"`
	Hash   string `json:"hash"`
}

// tagJSON represents a tag in tags.jsonl.
type tagJSON struct {
	TagID string `json:"tag_id"`
	Name  string `json:"name"`
}

// blobTagJSON represents an association in blob_tags.jsonl.
type blobTagJSON struct {
	BlobTagID string `json:"blob_tag_id"`
	BlobID    string `json:"blob_id"`
	TagID     string `json:"tag_id"`
}

// Export file names.
const (
	blobsFile    = "blobs.jsonl"
	tagsFile     = "tags.jsonl"
	blobTagsFile = "blob_tags.jsonl"
)
