package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the cmake build tool Graft node.
const NodeID graft.ID = "adapter.cmake"

func init() {
	graft.Register(graft.Node[ports.BuildTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return New(executor), nil
		},
	})
}
