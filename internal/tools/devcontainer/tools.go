package devcontainer

import (
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
	dc "github.com/Siddhant-K-code/mcp-devcontainer/internal/devcontainer"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/history"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/logger"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/tools"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/workspace"
)

var log = logger.ForComponent("devcontainer-tools")

// Deps carries the collaborators the devcontainer tools work against.
// History may be nil; generation then simply leaves no audit trail.
type Deps struct {
	Catalog    *catalog.Catalog
	Workspaces *workspace.Manager
	History    *history.Store
	CLI        *dc.CLI
}

func GetTools(deps *Deps) []tools.Tool {
	return []tools.Tool{
		NewGenerateTool(deps),
		NewUpdateTool(deps),
		NewReadTool(deps),
		NewTemplatesTool(deps),
		NewUpTool(deps),
		NewExecTool(deps),
		NewHistoryTool(deps),
	}
}

func (d *Deps) recordHistory(workspaceFolder, action, template, reasoning string) {
	if d.History == nil {
		return
	}
	if _, err := d.History.Append(workspaceFolder, action, template, reasoning); err != nil {
		log.Warn("failed to record generation history", "error", err)
	}
}
