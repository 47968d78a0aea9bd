package engine

import (
	"fmt"
	"strings"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
)

// Explain formats a human-readable account of what drove a generation or
// update. It only reads its inputs and cannot fail; pass a nil template
// when no template selection took place.
func Explain(features *FeatureSet, tpl *catalog.Template) string {
	var b strings.Builder

	if tpl != nil {
		fmt.Fprintf(&b, "Selected template: %s (%s)\n", tpl.Name, tpl.Description)
	} else {
		b.WriteString("Updated existing configuration\n")
	}

	if len(features.Languages) > 0 {
		fmt.Fprintf(&b, "Detected languages: %s\n", strings.Join(features.Languages, ", "))
	}
	if len(features.Frameworks) > 0 {
		fmt.Fprintf(&b, "Detected frameworks: %s\n", strings.Join(features.Frameworks, ", "))
	}
	if len(features.Databases) > 0 {
		fmt.Fprintf(&b, "Detected databases: %s\n", strings.Join(features.Databases, ", "))
	}
	if len(features.Ports) > 0 {
		ports := make([]string, len(features.Ports))
		for i, port := range features.Ports {
			ports[i] = fmt.Sprintf("%d", port)
		}
		fmt.Fprintf(&b, "Forwarded ports: %s\n", strings.Join(ports, ", "))
	}
	if len(features.Extensions) > 0 {
		fmt.Fprintf(&b, "Recommended extensions: %s\n", strings.Join(features.Extensions, ", "))
	}
	if len(features.Tools) > 0 {
		fmt.Fprintf(&b, "Enabled tooling: %s\n", strings.Join(features.Tools, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}
