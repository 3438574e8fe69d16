package locator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

var _ types.Locator = (*Dir)(nil)

// defaultIgnoredDirs are never descended into by Dir.
var defaultIgnoredDirs = []string{".git", ".hg", ".svn", ".bvc"}

// Dir locates content by walking a directory tree and hashing every regular
// file with XXH3-128.
type Dir struct {
	Root    string
	Ignored map[string]bool // Directory names skipped during the walk.
}

// NewDir returns a Dir locator rooted at root.
func NewDir(root string) *Dir {
	ignored := make(map[string]bool, len(defaultIgnoredDirs))
	for _, name := range defaultIgnoredDirs {
		ignored[name] = true
	}
	return &Dir{Root: root, Ignored: ignored}
}

// HashOf returns the hex XXH3-128 digest of the file at path.
func (d *Dir) HashOf(ctx context.Context, path string) (string, error) {
	hash, err := hashFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	return hash, nil
}

// PathsForHash returns the paths under Root whose content hashes to hash.
func (d *Dir) PathsForHash(ctx context.Context, hash string) ([]string, error) {
	entries, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterPaths(entries, hash), nil
}

// List hashes every regular file under Root in lexical walk order.
func (d *Dir) List(ctx context.Context) ([]types.Entry, error) {
	entries := []types.Entry{}
	err := filepath.WalkDir(d.Root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if de.IsDir() {
			if path != d.Root && d.Ignored[de.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !de.Type().IsRegular() {
			return nil
		}
		hash, err := hashFile(path)
		if err != nil {
			return err
		}
		entries = append(entries, types.Entry{Hash: hash, Path: filepath.Clean(path)})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", d.Root)
	}
	return entries, nil
}

// hashFile streams the file at path through XXH3-128 and returns the hex
// digest.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum128().Bytes()), nil
}
