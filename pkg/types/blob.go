package types

import "strings"

// Blob is one unique content object.
type Blob struct {
	BlobID string // UUID v7, assigned on first insertion.
	Hash   string // Content digest (unique, immutable).
}

// Tag is one unique label.
type Tag struct {
	TagID string // UUID v7, assigned on first insertion.
	Name  string // Label text (unique, immutable).
}

// BlobTag associates one Blob with one Tag. The (BlobID, TagID) pair is
// unique.
type BlobTag struct {
	BlobTagID string
	BlobID    string
	TagID     string
}

// TaggedBlob is a blob hash together with every tag it carries.
type TaggedBlob struct {
	Hash string
	Tags []string
}

// FileTags is one line of a reverse query report: a file currently holding
// a tagged blob, and the blob's complete tag set.
type FileTags struct {
	Path string
	Hash string
	Tags []string
}

// String renders the report line as "path: tag1, tag2".
func (f FileTags) String() string {
	return f.Path + ": " + strings.Join(f.Tags, ", ")
}

// ValidateHash returns ErrInvalidHash if hash is empty or contains
// whitespace.
func ValidateHash(hash string) error {
	if hash == "" || strings.ContainsAny(hash, " \t\r\n") {
		return ErrInvalidHash
	}
	return nil
}

// ValidateTagName returns ErrInvalidName if name is empty after trimming.
func ValidateTagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	return nil
}
