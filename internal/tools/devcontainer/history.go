package devcontainer

import (
	"encoding/json"
	"fmt"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/tools"
)

type HistoryTool struct {
	deps *Deps
}

func NewHistoryTool(deps *Deps) *HistoryTool {
	return &HistoryTool{deps: deps}
}

func (t *HistoryTool) Name() string {
	return "devcontainer_history"
}

func (t *HistoryTool) Description() string {
	return `Show past configuration generations and updates.

Each entry records the workspace, the template used (for generations)
and the reasoning that accompanied the result.`
}

func (t *HistoryTool) Title() string {
	return "Devcontainer Generation History"
}

func (t *HistoryTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *HistoryTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"workspace_folder": {
				"type": "string",
				"description": "Limit to one workspace; omit for all"
			},
			"limit": {
				"type": "integer",
				"description": "Maximum entries to return (default 20)"
			}
		},
		"required": []
	}`)
}

func (t *HistoryTool) Execute(input json.RawMessage) (interface{}, error) {
	req := struct {
		WorkspaceFolder string `json:"workspace_folder"`
		Limit           int    `json:"limit"`
	}{}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, err
		}
	}

	if t.deps.History == nil {
		return nil, fmt.Errorf("history store is not configured")
	}

	records, err := t.deps.History.List(req.WorkspaceFolder, req.Limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"entries": records,
		"count":   len(records),
	}, nil
}
