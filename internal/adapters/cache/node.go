package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/core/ports"
)

// NodeID is the Graft node for the cache store opener.
const NodeID graft.ID = "adapter.cache.opener"

// Opener implements ports.StoreOpener.
type Opener struct{}

// Open loads the store for a project root from the given path.
func (Opener) Open(root, path string) ports.CacheStore {
	return Open(root, path)
}

func init() {
	graft.Register(graft.Node[ports.StoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.StoreOpener, error) {
			return Opener{}, nil
		},
	})
}
