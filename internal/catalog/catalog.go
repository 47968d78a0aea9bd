package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/devcontainer"
)

// FallbackName is the template returned when nothing else matches. The
// catalog refuses to construct without it.
const FallbackName = "universal"

type Template struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Languages   []string               `json:"languages"`
	Frameworks  []string               `json:"frameworks"`
	Features    []string               `json:"features"`
	Category    string                 `json:"category"`
	BaseConfig  *devcontainer.Document `json:"-"`
}

func (t *Template) HasLanguage(lang string) bool {
	return containsFold(t.Languages, lang)
}

func (t *Template) HasFramework(fw string) bool {
	return containsFold(t.Frameworks, fw)
}

func containsFold(list []string, want string) bool {
	for _, item := range list {
		if strings.EqualFold(item, want) {
			return true
		}
	}
	return false
}

// Catalog is a read-only template registry. It is populated once and never
// mutated afterwards, so concurrent readers need no coordination.
type Catalog struct {
	templates []*Template
	byName    map[string]*Template
}

func New(templates []*Template) (*Catalog, error) {
	c := &Catalog{
		templates: templates,
		byName:    make(map[string]*Template, len(templates)),
	}

	for _, tpl := range templates {
		if tpl.Name == "" {
			return nil, fmt.Errorf("template with empty name")
		}
		if _, exists := c.byName[tpl.Name]; exists {
			return nil, fmt.Errorf("duplicate template name: %s", tpl.Name)
		}
		c.byName[tpl.Name] = tpl
	}

	if _, ok := c.byName[FallbackName]; !ok {
		return nil, fmt.Errorf("catalog has no %q fallback template", FallbackName)
	}

	return c, nil
}

// Default builds the catalog from the built-in seed. The seed always
// carries the fallback template, so failure here is a programming error.
func Default() *Catalog {
	c, err := New(seedTemplates())
	if err != nil {
		panic(fmt.Sprintf("built-in template seed is invalid: %v", err))
	}
	return c
}

type Filter struct {
	Category  string
	Language  string
	Framework string
}

func (f *Filter) matches(tpl *Template) bool {
	if f == nil {
		return true
	}
	if f.Category != "" && !strings.EqualFold(tpl.Category, f.Category) {
		return false
	}
	if f.Language != "" && !tpl.HasLanguage(f.Language) {
		return false
	}
	if f.Framework != "" && !tpl.HasFramework(f.Framework) {
		return false
	}
	return true
}

// List returns the templates satisfying every supplied predicate, in
// catalog order. A nil filter returns everything.
func (c *Catalog) List(f *Filter) []*Template {
	result := make([]*Template, 0, len(c.templates))
	for _, tpl := range c.templates {
		if f.matches(tpl) {
			result = append(result, tpl)
		}
	}
	return result
}

func (c *Catalog) Get(name string) (*Template, bool) {
	tpl, ok := c.byName[name]
	return tpl, ok
}

func (c *Catalog) Fallback() *Template {
	return c.byName[FallbackName]
}

func (c *Catalog) Len() int {
	return len(c.templates)
}

func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string

	for _, tpl := range c.templates {
		if tpl.Category == "" || seen[tpl.Category] {
			continue
		}
		seen[tpl.Category] = true
		categories = append(categories, tpl.Category)
	}

	sort.Strings(categories)
	return categories
}
