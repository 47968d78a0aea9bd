package engine

import (
	"reflect"
	"testing"
)

func TestExtractLanguagesAndFrameworks(t *testing.T) {
	fs := Extract("A Python backend using Django with a React frontend in TypeScript")

	if !reflect.DeepEqual(fs.Languages, []string{"python", "typescript"}) {
		t.Errorf("unexpected languages: %v", fs.Languages)
	}
	if !reflect.DeepEqual(fs.Frameworks, []string{"react", "django"}) {
		t.Errorf("unexpected frameworks: %v", fs.Frameworks)
	}
}

func TestExtractDatabasesAndTools(t *testing.T) {
	fs := Extract("postgres for storage, redis for caching, docker and git available")

	if !reflect.DeepEqual(fs.Databases, []string{"postgresql", "redis"}) {
		t.Errorf("unexpected databases: %v", fs.Databases)
	}
	if !reflect.DeepEqual(fs.Tools, []string{"docker", "git"}) {
		t.Errorf("unexpected tools: %v", fs.Tools)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	text := "Go service with gin, port 8080, mongodb, on alpine"

	first := Extract(text)
	second := Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two extractions of the same text differ:\n%+v\n%+v", first, second)
	}
}

func TestExtractEmptyText(t *testing.T) {
	fs := Extract("")

	if len(fs.Languages) != 0 || len(fs.Frameworks) != 0 || len(fs.Databases) != 0 ||
		len(fs.Tools) != 0 || len(fs.Ports) != 0 || len(fs.Extensions) != 0 {
		t.Errorf("empty text should extract nothing, got %+v", fs)
	}
	if fs.OS != "ubuntu" {
		t.Errorf("expected default OS ubuntu, got %q", fs.OS)
	}
}

func TestExtractPorts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"keyword port", "expose port 8080 for the API", []int{8080}},
		{"keyword colon", "port: 443 must be open", []int{443}},
		{"keyword low port", "listen on port 80", []int{80}},
		{"bare number in range", "the app listens on 3005", []int{3005}},
		{"bare number above range", "the token 99999 appears", nil},
		{"bare small number", "give it 50 tries", nil},
		{"bare number below range", "serve on 2999 maybe", nil},
		{"keyword and bare union", "port 8080 and also 3000", []int{8080, 3000}},
		{"duplicate mentions", "port 8080, again port 8080, bare 8080", []int{8080}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text).Ports
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q).Ports = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectOSPriority(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"anything at all", "ubuntu"},
		{"debian please", "debian"},
		{"alpine based", "alpine"},
		{"debian mentioned first, alpine later", "alpine"},
		{"alpine first then debian", "alpine"},
	}

	for _, tt := range tests {
		if got := Extract(tt.text).OS; got != tt.want {
			t.Errorf("Extract(%q).OS = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestRecommendExtensions(t *testing.T) {
	fs := Extract("typescript with react")

	want := []string{
		"dbaeumer.vscode-eslint",
		"esbenp.prettier-vscode",
		"dsznajder.es7-react-js-snippets",
		"formulahendry.auto-rename-tag",
	}
	if !reflect.DeepEqual(fs.Extensions, want) {
		t.Errorf("unexpected extensions: %v", fs.Extensions)
	}
}

func TestRecommendExtensionsDeduplicates(t *testing.T) {
	// javascript and typescript map to the same extension pair.
	fs := Extract("javascript and typescript together")

	want := []string{"dbaeumer.vscode-eslint", "esbenp.prettier-vscode"}
	if !reflect.DeepEqual(fs.Extensions, want) {
		t.Errorf("unexpected extensions: %v", fs.Extensions)
	}
}

func TestWordBoundaryMatching(t *testing.T) {
	// "javascript" must not trigger the java rule.
	fs := Extract("plain javascript project")

	for _, lang := range fs.Languages {
		if lang == "java" {
			t.Errorf("java matched inside javascript: %v", fs.Languages)
		}
	}
}

func TestOriginalTextRetained(t *testing.T) {
	text := "Rust and actix"
	if got := Extract(text).OriginalText; got != text {
		t.Errorf("OriginalText = %q, want %q", got, text)
	}
}
