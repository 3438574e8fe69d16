package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		check   func(t *testing.T, got any)
		wantErr error
	}{
		{
			name: "empty kind defaults to git at HEAD",
			cfg:  Config{},
			check: func(t *testing.T, got any) {
				g, ok := got.(*Git)
				require.True(t, ok, "expected *Git, got %T", got)
				assert.Equal(t, ".", g.Dir)
				assert.Equal(t, DefaultRev, g.Rev)
			},
		},
		{
			name: "git with explicit revision",
			cfg:  Config{Kind: KindGit, Rev: "main", Root: "/repo"},
			check: func(t *testing.T, got any) {
				g := got.(*Git)
				assert.Equal(t, "/repo", g.Dir)
				assert.Equal(t, "main", g.Rev)
			},
		},
		{
			name: "dir locator",
			cfg:  Config{Kind: KindDir, Root: "/notes"},
			check: func(t *testing.T, got any) {
				d, ok := got.(*Dir)
				require.True(t, ok, "expected *Dir, got %T", got)
				assert.Equal(t, "/notes", d.Root)
				assert.True(t, d.Ignored[".git"])
			},
		},
		{
			name:    "unknown kind",
			cfg:     Config{Kind: "svn"},
			wantErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}
