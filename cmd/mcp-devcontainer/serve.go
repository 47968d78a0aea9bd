package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
	dc "github.com/Siddhant-K-code/mcp-devcontainer/internal/devcontainer"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/history"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/logger"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/mcp"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/tools"
	devtools "github.com/Siddhant-K-code/mcp-devcontainer/internal/tools/devcontainer"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/watcher"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/workspace"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	log := logger.ForComponent("serve")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	workspaces := workspace.NewManager()

	hist, err := history.Open(cfg.HistoryPath)
	if err != nil {
		log.Warn("history store unavailable, continuing without it", "error", err)
		hist = nil
	} else {
		defer hist.Close()
	}

	deps := &devtools.Deps{
		Catalog:    catalog.Default(),
		Workspaces: workspaces,
		History:    hist,
		CLI:        dc.NewCLI(cfg.CLIBinary),
	}

	registry := tools.NewRegistry()
	if err := registry.Register(tools.NewHealthTool()); err != nil {
		return err
	}
	for _, tool := range devtools.GetTools(deps) {
		if err := registry.Register(tool); err != nil {
			return err
		}
	}

	if cfg.Watcher.Enabled {
		w, err := watcher.New(cfg.Watcher, func(events []watcher.FileEvent) {
			for _, event := range events {
				workspaces.Invalidate(event.Path)
			}
		})
		if err != nil {
			log.Warn("file watcher unavailable", "error", err)
		} else {
			workspaces.SetObserver(func(root string) {
				if err := w.AddRoot(root); err != nil {
					log.Debug("failed to watch workspace", "root", root, "error", err)
				}
			})
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()
		}
	}

	log.Info("serving MCP over stdio", "tools", len(registry.Names()))

	server := mcp.NewServer(registry)
	if err := server.ServeStdio(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
