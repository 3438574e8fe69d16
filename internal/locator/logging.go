package locator

import (
	"context"
	"log"

	"github.com/mesh-intelligence/blobtag/pkg/types"
)

var _ types.Locator = (*Logging)(nil)

// Logging delegates to a nested locator, logging each call as it happens.
type Logging struct {
	l   types.Locator
	log *log.Logger
}

// NewLogging wraps l so that every call is written to logger.
func NewLogging(l types.Locator, logger *log.Logger) *Logging {
	return &Logging{l: l, log: logger}
}

func (g *Logging) HashOf(ctx context.Context, path string) (string, error) {
	hash, err := g.l.HashOf(ctx, path)
	if err != nil {
		g.log.Printf("ERROR HashOf %s: %s", path, err)
	} else {
		g.log.Printf("HashOf %s = %s", path, hash)
	}
	return hash, err
}

func (g *Logging) PathsForHash(ctx context.Context, hash string) ([]string, error) {
	paths, err := g.l.PathsForHash(ctx, hash)
	if err != nil {
		g.log.Printf("ERROR PathsForHash %s: %s", hash, err)
	} else {
		g.log.Printf("PathsForHash %s: %d paths", hash, len(paths))
	}
	return paths, err
}

func (g *Logging) List(ctx context.Context) ([]types.Entry, error) {
	entries, err := g.l.List(ctx)
	if err != nil {
		g.log.Printf("ERROR List: %s", err)
	} else {
		g.log.Printf("List: %d entries", len(entries))
	}
	return entries, err
}
