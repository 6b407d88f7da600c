package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/linear"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{linear.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			tp := NewProvider(renderer)
			return NewOTelTracer(tp, InstrumentationName), nil
		},
	})
}
