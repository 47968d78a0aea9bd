package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/devcontainer"
)

// Feature identifiers inserted for recognized database and tool tags.
// Anything outside these tables is silently ignored.
var databaseFeatureIDs = map[string]string{
	"postgresql": "ghcr.io/itsmechlark/features/postgresql:1",
	"mongodb":    "ghcr.io/devcontainers-extra/features/mongodb:1",
	"redis":      "ghcr.io/itsmechlark/features/redis-server:1",
}

var toolFeatureIDs = map[string]string{
	"docker": "ghcr.io/devcontainers/features/docker-in-docker:2",
	"git":    "ghcr.io/devcontainers/features/git:1",
}

const nameSuffix = " Development"

// maxNameTags caps how many detected tags make it into the generated
// document name.
const maxNameTags = 3

// Build produces a configuration document from a template and a feature
// set. The template's base config is deep-copied first; the catalog entry
// is never touched.
func Build(tpl *catalog.Template, features *FeatureSet) *devcontainer.Document {
	doc := tpl.BaseConfig.Clone()

	mergePorts(doc, features.Ports)
	mergeExtensions(doc, features.Extensions)
	mergeFeatures(doc, features)
	applyName(doc, features)

	return doc
}

// Modify applies the synthesis merge rules against an existing document
// instead of a template base. Fields no merge rule targets are preserved
// verbatim. The input document is not mutated.
func Modify(doc *devcontainer.Document, features *FeatureSet) (*devcontainer.Document, error) {
	if doc == nil {
		return nil, ErrConfigNotFound
	}

	out := doc.Clone()

	mergePorts(out, features.Ports)
	mergeExtensions(out, features.Extensions)
	mergeFeatures(out, features)

	return out, nil
}

func mergePorts(doc *devcontainer.Document, ports []int) {
	if len(ports) == 0 {
		return
	}

	seen := make(map[int]bool, len(doc.ForwardPorts))
	for _, port := range doc.ForwardPorts {
		seen[port] = true
	}

	for _, port := range ports {
		if !seen[port] {
			seen[port] = true
			doc.ForwardPorts = append(doc.ForwardPorts, port)
		}
	}
}

func mergeExtensions(doc *devcontainer.Document, extensions []string) {
	if len(extensions) == 0 {
		return
	}

	if doc.Customizations == nil {
		doc.Customizations = &devcontainer.Customizations{}
	}
	if doc.Customizations.VSCode == nil {
		doc.Customizations.VSCode = &devcontainer.VSCodeCustomizations{}
	}

	existing := doc.Customizations.VSCode.Extensions
	seen := make(map[string]bool, len(existing))
	for _, ext := range existing {
		seen[ext] = true
	}

	for _, ext := range extensions {
		if !seen[ext] {
			seen[ext] = true
			existing = append(existing, ext)
		}
	}

	doc.Customizations.VSCode.Extensions = existing
}

func mergeFeatures(doc *devcontainer.Document, features *FeatureSet) {
	insert := func(id string) {
		if doc.Features == nil {
			doc.Features = make(map[string]map[string]interface{})
		}
		if _, exists := doc.Features[id]; !exists {
			doc.Features[id] = map[string]interface{}{}
		}
	}

	for _, db := range features.Databases {
		if id, ok := databaseFeatureIDs[db]; ok {
			insert(id)
		}
	}

	for _, tool := range features.Tools {
		if id, ok := toolFeatureIDs[tool]; ok {
			insert(id)
		}
	}
}

func applyName(doc *devcontainer.Document, features *FeatureSet) {
	if len(features.Languages) == 0 && len(features.Frameworks) == 0 {
		return
	}

	// Casers are stateful, so build a fresh one per call.
	caser := cases.Title(language.English)

	tags := make([]string, 0, maxNameTags)
	for _, tag := range features.Languages {
		if len(tags) == maxNameTags {
			break
		}
		tags = append(tags, caser.String(tag))
	}
	for _, tag := range features.Frameworks {
		if len(tags) == maxNameTags {
			break
		}
		tags = append(tags, caser.String(tag))
	}

	doc.Name = strings.Join(tags, " & ") + nameSuffix
}
