package devcontainer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/tools"
)

const (
	upTimeout   = 10 * time.Minute
	execTimeout = 5 * time.Minute
)

type UpTool struct {
	deps *Deps
}

func NewUpTool(deps *Deps) *UpTool {
	return &UpTool{deps: deps}
}

func (t *UpTool) Name() string {
	return "devcontainer_up"
}

func (t *UpTool) Description() string {
	return `Build and start the devcontainer for a workspace.

Shells out to the devcontainer CLI, which must be installed and on PATH.
Building an image for the first time can take several minutes.`
}

func (t *UpTool) Title() string {
	return "Start Devcontainer"
}

func (t *UpTool) Annotations() map[string]bool {
	return tools.NonIdempotentWriteAnnotations()
}

func (t *UpTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"workspace_folder": {
				"type": "string",
				"description": "Workspace root to bring up"
			}
		},
		"required": ["workspace_folder"]
	}`)
}

func (t *UpTool) Execute(input json.RawMessage) (interface{}, error) {
	req := struct {
		WorkspaceFolder string `json:"workspace_folder"`
	}{}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	if req.WorkspaceFolder == "" {
		return nil, fmt.Errorf("workspace_folder is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), upTimeout)
	defer cancel()

	output, err := t.deps.CLI.Up(ctx, req.WorkspaceFolder)
	if err != nil {
		return nil, fmt.Errorf("%w\n%s", err, output)
	}

	return map[string]interface{}{
		"output": output,
	}, nil
}

type ExecTool struct {
	deps *Deps
}

func NewExecTool(deps *Deps) *ExecTool {
	return &ExecTool{deps: deps}
}

func (t *ExecTool) Name() string {
	return "devcontainer_exec"
}

func (t *ExecTool) Description() string {
	return `Run a command inside the workspace's running devcontainer.

The container must already be up; use devcontainer_up first.`
}

func (t *ExecTool) Title() string {
	return "Execute in Devcontainer"
}

func (t *ExecTool) Annotations() map[string]bool {
	return tools.NonIdempotentWriteAnnotations()
}

func (t *ExecTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"workspace_folder": {
				"type": "string",
				"description": "Workspace root whose container runs the command"
			},
			"command": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Command and arguments to run"
			}
		},
		"required": ["workspace_folder", "command"]
	}`)
}

func (t *ExecTool) Execute(input json.RawMessage) (interface{}, error) {
	req := struct {
		WorkspaceFolder string   `json:"workspace_folder"`
		Command         []string `json:"command"`
	}{}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	if req.WorkspaceFolder == "" {
		return nil, fmt.Errorf("workspace_folder is required")
	}
	if len(req.Command) == 0 {
		return nil, fmt.Errorf("command is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), execTimeout)
	defer cancel()

	output, err := t.deps.CLI.Exec(ctx, req.WorkspaceFolder, req.Command)
	if err != nil {
		return nil, fmt.Errorf("%w\n%s", err, output)
	}

	return map[string]interface{}{
		"output": output,
	}, nil
}
