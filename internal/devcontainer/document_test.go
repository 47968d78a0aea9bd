package devcontainer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainJSON(t *testing.T) {
	doc, err := Parse([]byte(`{
		"name": "My Env",
		"image": "mcr.microsoft.com/devcontainers/base:ubuntu",
		"forwardPorts": [3000, 8080],
		"remoteUser": "vscode",
		"features": {
			"ghcr.io/devcontainers/features/git:1": {}
		},
		"customizations": {
			"vscode": {
				"extensions": ["golang.go"]
			}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "My Env", doc.Name)
	assert.Equal(t, "mcr.microsoft.com/devcontainers/base:ubuntu", doc.Image)
	assert.Equal(t, []int{3000, 8080}, doc.ForwardPorts)
	assert.Equal(t, "vscode", doc.RemoteUser)
	assert.Contains(t, doc.Features, "ghcr.io/devcontainers/features/git:1")
	require.NotNil(t, doc.Customizations)
	require.NotNil(t, doc.Customizations.VSCode)
	assert.Equal(t, []string{"golang.go"}, doc.Customizations.VSCode.Extensions)
}

func TestParseToleratesCommentsAndTrailingCommas(t *testing.T) {
	doc, err := Parse([]byte(`{
		// the base image
		"image": "alpine:3.19",
		/* ports */
		"forwardPorts": [3000,],
	}`))
	require.NoError(t, err)

	assert.Equal(t, "alpine:3.19", doc.Image)
	assert.Equal(t, []int{3000}, doc.ForwardPorts)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"name": `))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedDocument))

	_, err = Parse([]byte(`{"forwardPorts": "not-a-list"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedDocument))
}

func TestUnknownFieldsRoundTrip(t *testing.T) {
	input := []byte(`{
		"name": "Env",
		"containerEnv": {"TZ":"UTC","MODE":"dev"},
		"runArgs": ["--gpus","all"],
		"customizations": {
			"vscode": {"extensions": ["golang.go"], "settings": {"editor.tabSize":4}},
			"jetbrains": {"plugins":["go"]}
		}
	}`)

	doc, err := Parse(input)
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.JSONEq(t, `{"TZ":"UTC","MODE":"dev"}`, string(decoded["containerEnv"]))
	assert.JSONEq(t, `["--gpus","all"]`, string(decoded["runArgs"]))

	var custom map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["customizations"], &custom))
	assert.JSONEq(t, `{"plugins":["go"]}`, string(custom["jetbrains"]))

	var vscode map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(custom["vscode"], &vscode))
	assert.JSONEq(t, `{"editor.tabSize":4}`, string(vscode["settings"]))
	assert.JSONEq(t, `["golang.go"]`, string(vscode["extensions"]))
}

func TestMarshalOmitsEmptyFields(t *testing.T) {
	out, err := json.Marshal(&Document{Image: "alpine:3.19"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"image":"alpine:3.19"}`, string(out))
}

func TestDockerComposeBasePreserved(t *testing.T) {
	doc, err := Parse([]byte(`{
		"dockerComposeFile": ["docker-compose.yml", "docker-compose.dev.yml"],
		"service": "app",
		"workspaceFolder": "/workspace"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "app", doc.Service)
	assert.Equal(t, "/workspace", doc.WorkspaceFolder)

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.JSONEq(t, `["docker-compose.yml", "docker-compose.dev.yml"]`, string(decoded["dockerComposeFile"]))
}

func TestCloneIsIndependent(t *testing.T) {
	doc, err := Parse([]byte(`{
		"name": "Env",
		"forwardPorts": [3000],
		"features": {"ghcr.io/devcontainers/features/git:1": {"version":"latest"}},
		"customizations": {"vscode": {"extensions": ["golang.go"]}},
		"containerEnv": {"TZ":"UTC"}
	}`))
	require.NoError(t, err)

	clone := doc.Clone()
	clone.Name = "Changed"
	clone.ForwardPorts = append(clone.ForwardPorts, 8080)
	clone.Features["ghcr.io/devcontainers/features/git:1"]["version"] = "2"
	clone.Customizations.VSCode.Extensions[0] = "other.ext"

	assert.Equal(t, "Env", doc.Name)
	assert.Equal(t, []int{3000}, doc.ForwardPorts)
	assert.Equal(t, "latest", doc.Features["ghcr.io/devcontainers/features/git:1"]["version"])
	assert.Equal(t, []string{"golang.go"}, doc.Customizations.VSCode.Extensions)
}

func TestCloneNil(t *testing.T) {
	var doc *Document
	assert.Nil(t, doc.Clone())
}
