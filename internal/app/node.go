package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/scanner"
	"go.trai.ch/mason/internal/engine/scheduler"
)

const (
	// AppNodeID is the Graft node for the main App.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the Graft node for the resolved component set.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application with the adapters the CLI
// layer needs directly.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scanner.NodeID,
			scheduler.NodeID,
			fs.HasherNodeID,
			cache.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			scan, err := graft.Dep[*scanner.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			stores, err := graft.Dep[ports.StoreOpener](ctx)
			if err != nil {
				return nil, err
			}

			watch, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, scan, sched, hasher, stores, watch, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log, Telemetry: tel}, nil
		},
	})
}
