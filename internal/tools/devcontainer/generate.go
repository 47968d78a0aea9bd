package devcontainer

import (
	"encoding/json"
	"fmt"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/engine"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/history"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/tools"
)

type GenerateTool struct {
	deps *Deps
}

func NewGenerateTool(deps *Deps) *GenerateTool {
	return &GenerateTool{deps: deps}
}

func (t *GenerateTool) Name() string {
	return "devcontainer_generate"
}

func (t *GenerateTool) Description() string {
	return `Generate a devcontainer.json from a plain-text description of the environment.

The description is analyzed for languages, frameworks, databases, tools,
ports and OS preference. The best-matching template is selected as the
base and the detected features are merged into it.

EXAMPLES:
- "Python with Django and PostgreSQL, port 8000"
- "TypeScript React app, node 20, redis for caching"
- "Rust with actix-web on alpine"

The result is written to .devcontainer/devcontainer.json in the workspace
unless save is false. Set template to force a specific base template
instead of letting the match decide.`
}

func (t *GenerateTool) Title() string {
	return "Generate Devcontainer Configuration"
}

func (t *GenerateTool) Annotations() map[string]bool {
	return tools.SafeWriteAnnotations()
}

func (t *GenerateTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"prompt": {
				"type": "string",
				"description": "Free-text description of the desired environment"
			},
			"workspace_folder": {
				"type": "string",
				"description": "Workspace root the configuration belongs to"
			},
			"template": {
				"type": "string",
				"description": "Optional template name to use instead of automatic selection"
			},
			"save": {
				"type": "boolean",
				"description": "Write the result to the workspace (default true)"
			}
		},
		"required": ["prompt", "workspace_folder"]
	}`)
}

func (t *GenerateTool) Execute(input json.RawMessage) (interface{}, error) {
	req := struct {
		Prompt          string `json:"prompt"`
		WorkspaceFolder string `json:"workspace_folder"`
		Template        string `json:"template"`
		Save            *bool  `json:"save"`
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

	features := engine.Extract(req.Prompt)

	tpl, err := t.selectTemplate(req.Template, features)
	if err != nil {
		return nil, err
	}

	doc := engine.Build(tpl, features)
	reasoning := engine.Explain(features, tpl)

	result := map[string]interface{}{
		"template":  tpl.Name,
		"config":    doc,
		"reasoning": reasoning,
	}

	if req.Save == nil || *req.Save {
		path, err := t.deps.Workspaces.Save(req.WorkspaceFolder, doc)
		if err != nil {
			return nil, err
		}
		result["path"] = path
	}

	t.deps.recordHistory(req.WorkspaceFolder, history.ActionGenerate, tpl.Name, reasoning)

	return result, nil
}

func (t *GenerateTool) selectTemplate(name string, features *engine.FeatureSet) (*catalog.Template, error) {
	if name != "" {
		forced, ok := t.deps.Catalog.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", engine.ErrTemplateNotFound, name)
		}
		return forced, nil
	}
	return engine.FindBestMatch(t.deps.Catalog, features.Languages, features.Frameworks)
}
