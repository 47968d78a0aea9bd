package engine

import (
	"strings"
	"testing"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
)

func TestExplainWithTemplate(t *testing.T) {
	features := &FeatureSet{
		Languages:  []string{"python"},
		Frameworks: []string{"django"},
		Databases:  []string{"postgresql"},
		Ports:      []int{8000},
		Extensions: []string{"ms-python.python"},
		Tools:      []string{"git"},
	}
	tpl := &catalog.Template{Name: "python", Description: "Python template"}

	explanation := Explain(features, tpl)

	for _, want := range []string{
		"Selected template: python",
		"Detected languages: python",
		"Detected frameworks: django",
		"Detected databases: postgresql",
		"Forwarded ports: 8000",
		"Recommended extensions: ms-python.python",
		"Enabled tooling: git",
	} {
		if !strings.Contains(explanation, want) {
			t.Errorf("explanation missing %q:\n%s", want, explanation)
		}
	}
}

func TestExplainOmitsEmptyCategories(t *testing.T) {
	explanation := Explain(&FeatureSet{Ports: []int{8080}}, nil)

	if strings.Contains(explanation, "languages") {
		t.Errorf("empty category mentioned:\n%s", explanation)
	}
	if !strings.Contains(explanation, "Updated existing configuration") {
		t.Errorf("nil template should read as update:\n%s", explanation)
	}
	if !strings.Contains(explanation, "Forwarded ports: 8080") {
		t.Errorf("ports missing:\n%s", explanation)
	}
}

func TestExplainNeverEmpty(t *testing.T) {
	if Explain(&FeatureSet{}, nil) == "" {
		t.Error("explanation should never be empty")
	}
}
