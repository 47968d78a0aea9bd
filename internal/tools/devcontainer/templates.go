package devcontainer

import (
	"encoding/json"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/tools"
)

type TemplatesTool struct {
	deps *Deps
}

func NewTemplatesTool(deps *Deps) *TemplatesTool {
	return &TemplatesTool{deps: deps}
}

func (t *TemplatesTool) Name() string {
	return "devcontainer_templates"
}

func (t *TemplatesTool) Description() string {
	return `List the available devcontainer templates.

Filters are conjunctive: a template must match every supplied one.
Omit all filters to list the full catalog.`
}

func (t *TemplatesTool) Title() string {
	return "List Devcontainer Templates"
}

func (t *TemplatesTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *TemplatesTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"category": {
				"type": "string",
				"description": "Only templates in this category"
			},
			"language": {
				"type": "string",
				"description": "Only templates supporting this language"
			},
			"framework": {
				"type": "string",
				"description": "Only templates supporting this framework"
			}
		},
		"required": []
	}`)
}

func (t *TemplatesTool) Execute(input json.RawMessage) (interface{}, error) {
	req := struct {
		Category  string `json:"category"`
		Language  string `json:"language"`
		Framework string `json:"framework"`
	}{}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, err
		}
	}

	var filter *catalog.Filter
	if req.Category != "" || req.Language != "" || req.Framework != "" {
		filter = &catalog.Filter{
			Category:  req.Category,
			Language:  req.Language,
			Framework: req.Framework,
		}
	}

	return map[string]interface{}{
		"templates":  t.deps.Catalog.List(filter),
		"categories": t.deps.Catalog.Categories(),
	}, nil
}
