package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/cmake"     //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WorkspaceNodeID,
			cmake.NodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			linear.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	buildTool, err := graft.Dep[ports.BuildTool](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, workspace, buildTool, executor, log, tracer, renderer), nil
}
