package catalog

import (
	"encoding/json"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/devcontainer"
)

// seedTemplates returns the built-in template set. Order matters: the
// selector breaks score ties by first occurrence.
func seedTemplates() []*Template {
	return []*Template{
		{
			Name:        "universal",
			Description: "General-purpose environment with common tooling preinstalled",
			Languages:   []string{},
			Frameworks:  []string{},
			Features:    []string{"git", "github-cli", "multiple language runtimes"},
			Category:    "general",
			BaseConfig: &devcontainer.Document{
				Name:  "Universal Development Environment",
				Image: "mcr.microsoft.com/devcontainers/universal:2-linux",
				Features: map[string]map[string]interface{}{
					"ghcr.io/devcontainers/features/git:1": {},
				},
				RemoteUser: "vscode",
			},
		},
		{
			Name:        "python",
			Description: "Python with pip, venv and common web frameworks",
			Languages:   []string{"python"},
			Frameworks:  []string{"django", "flask", "fastapi"},
			Features:    []string{"python 3.12", "pip", "venv"},
			Category:    "language",
			BaseConfig: &devcontainer.Document{
				Name:  "Python Development",
				Image: "mcr.microsoft.com/devcontainers/python:3.12",
				Customizations: &devcontainer.Customizations{
					VSCode: &devcontainer.VSCodeCustomizations{
						Extensions: []string{"ms-python.python", "ms-python.vscode-pylance"},
					},
				},
				PostCreateCommand: json.RawMessage(`"pip install --user -r requirements.txt"`),
				RemoteUser:        "vscode",
			},
		},
		{
			Name:        "node",
			Description: "Node.js for JavaScript and TypeScript projects",
			Languages:   []string{"javascript", "typescript"},
			Frameworks:  []string{"react", "vue", "angular", "express", "next"},
			Features:    []string{"node 20", "npm", "yarn"},
			Category:    "language",
			BaseConfig: &devcontainer.Document{
				Name:  "Node.js Development",
				Image: "mcr.microsoft.com/devcontainers/javascript-node:20",
				Customizations: &devcontainer.Customizations{
					VSCode: &devcontainer.VSCodeCustomizations{
						Extensions: []string{"dbaeumer.vscode-eslint", "esbenp.prettier-vscode"},
					},
				},
				ForwardPorts:      []int{3000},
				PostCreateCommand: json.RawMessage(`"npm install"`),
				RemoteUser:        "node",
			},
		},
		{
			Name:        "go",
			Description: "Go toolchain with gopls",
			Languages:   []string{"go"},
			Frameworks:  []string{"gin", "echo", "fiber"},
			Features:    []string{"go 1.22", "gopls", "delve"},
			Category:    "language",
			BaseConfig: &devcontainer.Document{
				Name:  "Go Development",
				Image: "mcr.microsoft.com/devcontainers/go:1.22",
				Customizations: &devcontainer.Customizations{
					VSCode: &devcontainer.VSCodeCustomizations{
						Extensions: []string{"golang.go"},
					},
				},
				RemoteUser: "vscode",
			},
		},
		{
			Name:        "rust",
			Description: "Rust with cargo and rust-analyzer",
			Languages:   []string{"rust"},
			Frameworks:  []string{"actix", "rocket", "axum"},
			Features:    []string{"rustc", "cargo", "clippy"},
			Category:    "language",
			BaseConfig: &devcontainer.Document{
				Name:  "Rust Development",
				Image: "mcr.microsoft.com/devcontainers/rust:1",
				Customizations: &devcontainer.Customizations{
					VSCode: &devcontainer.VSCodeCustomizations{
						Extensions: []string{"rust-lang.rust-analyzer"},
					},
				},
				RemoteUser: "vscode",
			},
		},
		{
			Name:        "java",
			Description: "Java with Maven and Gradle",
			Languages:   []string{"java"},
			Frameworks:  []string{"spring", "quarkus"},
			Features:    []string{"jdk 21", "maven", "gradle"},
			Category:    "language",
			BaseConfig: &devcontainer.Document{
				Name:  "Java Development",
				Image: "mcr.microsoft.com/devcontainers/java:21",
				Customizations: &devcontainer.Customizations{
					VSCode: &devcontainer.VSCodeCustomizations{
						Extensions: []string{"vscjava.vscode-java-pack"},
					},
				},
				RemoteUser: "vscode",
			},
		},
		{
			Name:        "fullstack",
			Description: "Compose-based stack for web frontends with a backing API",
			Languages:   []string{"javascript", "python"},
			Frameworks:  []string{"react", "django"},
			Features:    []string{"docker compose", "node 20", "python 3.12"},
			Category:    "fullstack",
			BaseConfig: &devcontainer.Document{
				Name:              "Fullstack Development",
				DockerComposeFile: json.RawMessage(`"docker-compose.yml"`),
				Service:           "app",
				WorkspaceFolder:   "/workspace",
				Customizations: &devcontainer.Customizations{
					VSCode: &devcontainer.VSCodeCustomizations{
						Extensions: []string{"dbaeumer.vscode-eslint", "ms-python.python"},
					},
				},
				ForwardPorts: []int{3000, 8000},
				RemoteUser:   "vscode",
			},
		},
	}
}
