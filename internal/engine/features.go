package engine

import (
	"regexp"
	"strconv"
)

// FeatureSet is the structured result of analyzing a free-text environment
// description. All slice fields are deduplicated and keep first-mention
// order so repeated extraction of the same text is byte-identical.
type FeatureSet struct {
	Languages    []string `json:"languages"`
	Frameworks   []string `json:"frameworks"`
	Databases    []string `json:"databases"`
	Tools        []string `json:"tools"`
	OS           string   `json:"os"`
	Ports        []int    `json:"ports"`
	Extensions   []string `json:"extensions"`
	OriginalText string   `json:"-"`
}

type tagRule struct {
	tag      string
	patterns []*regexp.Regexp
}

func rule(tag string, exprs ...string) tagRule {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return tagRule{tag: tag, patterns: patterns}
}

// The rule tables are data: adding a tag means adding a row, nothing else
// in the extractor changes.
var languageRules = []tagRule{
	rule("python", `\bpython\b`),
	rule("javascript", `\bjavascript\b`, `\bnode(?:\.?js)?\b`),
	rule("typescript", `\btypescript\b`),
	rule("go", `\bgolang\b`, `\bgo\b`),
	rule("rust", `\brust\b`),
	rule("java", `\bjava\b`),
	rule("ruby", `\bruby\b`),
	rule("php", `\bphp\b`),
}

var frameworkRules = []tagRule{
	rule("react", `\breact(?:\.?js)?\b`),
	rule("vue", `\bvue(?:\.?js)?\b`),
	rule("angular", `\bangular\b`),
	rule("django", `\bdjango\b`),
	rule("flask", `\bflask\b`),
	rule("fastapi", `\bfastapi\b`),
	rule("express", `\bexpress(?:\.?js)?\b`),
	rule("next", `\bnext\.?js\b`),
	rule("rails", `\b(?:ruby\s+on\s+)?rails\b`),
	rule("spring", `\bspring(?:\s+boot)?\b`),
	rule("actix", `\bactix\b`),
	rule("rocket", `\brocket\b`),
	rule("axum", `\baxum\b`),
	rule("gin", `\bgin\b`),
	rule("laravel", `\blaravel\b`),
}

var databaseRules = []tagRule{
	rule("postgresql", `\bpostgres(?:ql)?\b`, `\bpsql\b`),
	rule("mysql", `\bmysql\b`, `\bmariadb\b`),
	rule("mongodb", `\bmongo(?:db)?\b`),
	rule("redis", `\bredis\b`),
	rule("sqlite", `\bsqlite3?\b`),
}

var toolRules = []tagRule{
	rule("docker", `\bdocker\b`),
	rule("git", `\bgit\b`),
	rule("kubernetes", `\bkubernetes\b`, `\bk8s\b`),
	rule("terraform", `\bterraform\b`),
}

// osRules is priority-ordered: the first matching entry wins no matter
// where each keyword appears in the text.
var osRules = []tagRule{
	rule("alpine", `\balpine\b`),
	rule("debian", `\bdebian\b`),
}

const defaultOS = "ubuntu"

// extensionsByTag maps detected language/framework tags to editor
// extension recommendations.
var extensionsByTag = map[string][]string{
	"typescript": {"dbaeumer.vscode-eslint", "esbenp.prettier-vscode"},
	"javascript": {"dbaeumer.vscode-eslint", "esbenp.prettier-vscode"},
	"python":     {"ms-python.python", "ms-python.vscode-pylance"},
	"go":         {"golang.go"},
	"rust":       {"rust-lang.rust-analyzer"},
	"react":      {"dsznajder.es7-react-js-snippets", "formulahendry.auto-rename-tag"},
}

var (
	keywordPortPattern = regexp.MustCompile(`(?i)\bports?\s*[:=]?\s*(\d{1,5})\b`)
	barePortPattern    = regexp.MustCompile(`\b(\d{4,5})\b`)
)

// Extract analyzes free text into a FeatureSet. It is total: text with no
// recognizable content yields empty sets, never an error.
func Extract(text string) *FeatureSet {
	fs := &FeatureSet{
		Languages:    matchTags(languageRules, text),
		Frameworks:   matchTags(frameworkRules, text),
		Databases:    matchTags(databaseRules, text),
		Tools:        matchTags(toolRules, text),
		OS:           detectOS(text),
		Ports:        extractPorts(text),
		OriginalText: text,
	}

	fs.Extensions = recommendExtensions(fs.Languages, fs.Frameworks)

	return fs
}

func matchTags(rules []tagRule, text string) []string {
	tags := make([]string, 0)
	for _, r := range rules {
		for _, pattern := range r.patterns {
			if pattern.MatchString(text) {
				tags = append(tags, r.tag)
				break
			}
		}
	}
	return tags
}

func detectOS(text string) string {
	for _, r := range osRules {
		for _, pattern := range r.patterns {
			if pattern.MatchString(text) {
				return r.tag
			}
		}
	}
	return defaultOS
}

// extractPorts unions two passes: numbers following the word "port"
// (any valid port), and bare 4-5 digit numbers in [3000, 9999]. The bare
// range is a heuristic net for inline ports mentioned without the keyword.
func extractPorts(text string) []int {
	ports := make([]int, 0)
	seen := make(map[int]bool)

	for _, m := range keywordPortPattern.FindAllStringSubmatch(text, -1) {
		port, err := strconv.Atoi(m[1])
		if err != nil || port < 1 || port > 65535 {
			continue
		}
		if !seen[port] {
			seen[port] = true
			ports = append(ports, port)
		}
	}

	for _, m := range barePortPattern.FindAllStringSubmatch(text, -1) {
		port, err := strconv.Atoi(m[1])
		if err != nil || port < 3000 || port > 9999 {
			continue
		}
		if !seen[port] {
			seen[port] = true
			ports = append(ports, port)
		}
	}

	return ports
}

func recommendExtensions(languages, frameworks []string) []string {
	extensions := make([]string, 0)
	seen := make(map[string]bool)

	add := func(tags []string) {
		for _, tag := range tags {
			for _, ext := range extensionsByTag[tag] {
				if !seen[ext] {
					seen[ext] = true
					extensions = append(extensions, ext)
				}
			}
		}
	}

	add(languages)
	add(frameworks)

	return extensions
}
