package devcontainer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
)

// ErrMalformedDocument is returned when a devcontainer.json cannot be
// structurally parsed. The document is surfaced to the caller unrepaired.
var ErrMalformedDocument = errors.New("malformed devcontainer document")

// Document is a devcontainer.json with typed fields for every path the
// engine touches. Fields it does not recognize round-trip through Extra
// untouched.
type Document struct {
	Name              string
	Image             string
	DockerComposeFile json.RawMessage
	Service           string
	WorkspaceFolder   string
	Features          map[string]map[string]interface{}
	Customizations    *Customizations
	ForwardPorts      []int
	PostCreateCommand json.RawMessage
	RemoteUser        string
	Extra             map[string]json.RawMessage
}

type Customizations struct {
	VSCode *VSCodeCustomizations
	Extra  map[string]json.RawMessage
}

type VSCodeCustomizations struct {
	Extensions []string
	Extra      map[string]json.RawMessage
}

// Parse decodes devcontainer JSON. Comments and trailing commas are
// accepted, matching what the devcontainer CLI itself tolerates.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(jsonc.ToJSON(data), doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return doc, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, raw := range fields {
		var err error
		switch key {
		case "name":
			err = json.Unmarshal(raw, &d.Name)
		case "image":
			err = json.Unmarshal(raw, &d.Image)
		case "dockerComposeFile":
			d.DockerComposeFile = raw
		case "service":
			err = json.Unmarshal(raw, &d.Service)
		case "workspaceFolder":
			err = json.Unmarshal(raw, &d.WorkspaceFolder)
		case "features":
			err = json.Unmarshal(raw, &d.Features)
		case "customizations":
			d.Customizations = &Customizations{}
			err = json.Unmarshal(raw, d.Customizations)
		case "forwardPorts":
			err = json.Unmarshal(raw, &d.ForwardPorts)
		case "postCreateCommand":
			d.PostCreateCommand = raw
		case "remoteUser":
			err = json.Unmarshal(raw, &d.RemoteUser)
		default:
			if d.Extra == nil {
				d.Extra = make(map[string]json.RawMessage)
			}
			d.Extra[key] = raw
		}
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}

	return nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.Extra)+10)
	for key, raw := range d.Extra {
		fields[key] = raw
	}

	put := func(key string, value interface{}) error {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		fields[key] = raw
		return nil
	}

	if d.Name != "" {
		if err := put("name", d.Name); err != nil {
			return nil, err
		}
	}
	if d.Image != "" {
		if err := put("image", d.Image); err != nil {
			return nil, err
		}
	}
	if len(d.DockerComposeFile) > 0 {
		fields["dockerComposeFile"] = d.DockerComposeFile
	}
	if d.Service != "" {
		if err := put("service", d.Service); err != nil {
			return nil, err
		}
	}
	if d.WorkspaceFolder != "" {
		if err := put("workspaceFolder", d.WorkspaceFolder); err != nil {
			return nil, err
		}
	}
	if len(d.Features) > 0 {
		if err := put("features", d.Features); err != nil {
			return nil, err
		}
	}
	if d.Customizations != nil {
		if err := put("customizations", d.Customizations); err != nil {
			return nil, err
		}
	}
	if len(d.ForwardPorts) > 0 {
		if err := put("forwardPorts", d.ForwardPorts); err != nil {
			return nil, err
		}
	}
	if len(d.PostCreateCommand) > 0 {
		fields["postCreateCommand"] = d.PostCreateCommand
	}
	if d.RemoteUser != "" {
		if err := put("remoteUser", d.RemoteUser); err != nil {
			return nil, err
		}
	}

	return json.Marshal(fields)
}

func (c *Customizations) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, raw := range fields {
		if key == "vscode" {
			c.VSCode = &VSCodeCustomizations{}
			if err := json.Unmarshal(raw, c.VSCode); err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			continue
		}
		if c.Extra == nil {
			c.Extra = make(map[string]json.RawMessage)
		}
		c.Extra[key] = raw
	}

	return nil
}

func (c *Customizations) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(c.Extra)+1)
	for key, raw := range c.Extra {
		fields[key] = raw
	}

	if c.VSCode != nil {
		raw, err := json.Marshal(c.VSCode)
		if err != nil {
			return nil, err
		}
		fields["vscode"] = raw
	}

	return json.Marshal(fields)
}

func (v *VSCodeCustomizations) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, raw := range fields {
		if key == "extensions" {
			if err := json.Unmarshal(raw, &v.Extensions); err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			continue
		}
		if v.Extra == nil {
			v.Extra = make(map[string]json.RawMessage)
		}
		v.Extra[key] = raw
	}

	return nil
}

func (v *VSCodeCustomizations) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(v.Extra)+1)
	for key, raw := range v.Extra {
		fields[key] = raw
	}

	if len(v.Extensions) > 0 {
		raw, err := json.Marshal(v.Extensions)
		if err != nil {
			return nil, err
		}
		fields["extensions"] = raw
	}

	return json.Marshal(fields)
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	out := &Document{
		Name:              d.Name,
		Image:             d.Image,
		DockerComposeFile: cloneRaw(d.DockerComposeFile),
		Service:           d.Service,
		WorkspaceFolder:   d.WorkspaceFolder,
		PostCreateCommand: cloneRaw(d.PostCreateCommand),
		RemoteUser:        d.RemoteUser,
	}

	if d.Features != nil {
		out.Features = make(map[string]map[string]interface{}, len(d.Features))
		for id, opts := range d.Features {
			copied := make(map[string]interface{}, len(opts))
			for k, v := range opts {
				copied[k] = v
			}
			out.Features[id] = copied
		}
	}

	if d.Customizations != nil {
		out.Customizations = &Customizations{
			Extra: cloneRawMap(d.Customizations.Extra),
		}
		if d.Customizations.VSCode != nil {
			out.Customizations.VSCode = &VSCodeCustomizations{
				Extensions: append([]string(nil), d.Customizations.VSCode.Extensions...),
				Extra:      cloneRawMap(d.Customizations.VSCode.Extra),
			}
		}
	}

	if d.ForwardPorts != nil {
		out.ForwardPorts = append([]int(nil), d.ForwardPorts...)
	}

	out.Extra = cloneRawMap(d.Extra)

	return out
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

func cloneRawMap(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = cloneRaw(v)
	}
	return out
}
