package devcontainer

import (
	"encoding/json"
	"fmt"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/engine"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/history"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/tools"
)

type UpdateTool struct {
	deps *Deps
}

func NewUpdateTool(deps *Deps) *UpdateTool {
	return &UpdateTool{deps: deps}
}

func (t *UpdateTool) Name() string {
	return "devcontainer_update"
}

func (t *UpdateTool) Description() string {
	return `Update an existing devcontainer.json from a plain-text change request.

The request is analyzed the same way as generation, and the detected
ports, extensions, databases and tools are merged into the existing
configuration. Everything the request does not touch is preserved,
including fields this server does not recognize.

EXAMPLES:
- "also forward port 5432"
- "add redis and the docker feature"

Fails when the workspace has no devcontainer configuration yet; use
devcontainer_generate first.`
}

func (t *UpdateTool) Title() string {
	return "Update Devcontainer Configuration"
}

func (t *UpdateTool) Annotations() map[string]bool {
	return tools.SafeWriteAnnotations()
}

func (t *UpdateTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"prompt": {
				"type": "string",
				"description": "Free-text description of the requested change"
			},
			"workspace_folder": {
				"type": "string",
				"description": "Workspace root holding the configuration to update"
			}
		},
		"required": ["prompt", "workspace_folder"]
	}`)
}

func (t *UpdateTool) Execute(input json.RawMessage) (interface{}, error) {
	req := struct {
		Prompt          string `json:"prompt"`
		WorkspaceFolder string `json:"workspace_folder"`
	}{}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if req.WorkspaceFolder == "" {
		return nil, fmt.Errorf("workspace_folder is required")
	}

	existing, _, err := t.deps.Workspaces.Load(req.WorkspaceFolder)
	if err != nil {
		return nil, err
	}

	features := engine.Extract(req.Prompt)

	updated, err := engine.Modify(existing, features)
	if err != nil {
		return nil, err
	}

	reasoning := engine.Explain(features, nil)

	path, err := t.deps.Workspaces.Save(req.WorkspaceFolder, updated)
	if err != nil {
		return nil, err
	}

	t.deps.recordHistory(req.WorkspaceFolder, history.ActionUpdate, "", reasoning)

	return map[string]interface{}{
		"path":      path,
		"config":    updated,
		"reasoning": reasoning,
	}, nil
}

type ReadTool struct {
	deps *Deps
}

func NewReadTool(deps *Deps) *ReadTool {
	return &ReadTool{deps: deps}
}

func (t *ReadTool) Name() string {
	return "devcontainer_read"
}

func (t *ReadTool) Description() string {
	return `Read the workspace's current devcontainer.json.

Accepts configurations at .devcontainer/devcontainer.json and
.devcontainer.json, including ones with comments and trailing commas.`
}

func (t *ReadTool) Title() string {
	return "Read Devcontainer Configuration"
}

func (t *ReadTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ReadTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"workspace_folder": {
				"type": "string",
				"description": "Workspace root to read the configuration from"
			}
		},
		"required": ["workspace_folder"]
	}`)
}

func (t *ReadTool) Execute(input json.RawMessage) (interface{}, error) {
	req := struct {
		WorkspaceFolder string `json:"workspace_folder"`
	}{}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	if req.WorkspaceFolder == "" {
		return nil, fmt.Errorf("workspace_folder is required")
	}

	doc, path, err := t.deps.Workspaces.Load(req.WorkspaceFolder)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"path":   path,
		"config": doc,
	}, nil
}
