package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHash(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		wantErr error
	}{
		{name: "sha1 hex", hash: "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"},
		{name: "short hash", hash: "abc"},
		{name: "empty", hash: "", wantErr: ErrInvalidHash},
		{name: "embedded space", hash: "abc def", wantErr: ErrInvalidHash},
		{name: "trailing newline", hash: "abc\n", wantErr: ErrInvalidHash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateHash(tt.hash), tt.wantErr)
		})
	}
}

func TestValidateTagName(t *testing.T) {
	assert.NoError(t, ValidateTagName("draft"))
	assert.NoError(t, ValidateTagName("two words"))
	assert.ErrorIs(t, ValidateTagName(""), ErrInvalidName)
	assert.ErrorIs(t, ValidateTagName("  \t"), ErrInvalidName)
}

func TestFileTagsString(t *testing.T) {
	ft := FileTags{Path: "notes/a.md", Hash: "h1", Tags: []string{"a", "b"}}
	assert.Equal(t, "notes/a.md: a, b", ft.String())

	empty := FileTags{Path: "x"}
	assert.Equal(t, "x: ", empty.String())
}
