package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
	"text/template/parse"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds the number of parsed templates kept in memory.
const defaultCacheSize = 64

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// quoteList renders strings as a single-quoted, comma-separated JS list body.
	"quoteList": func(items []string) string {
		quoted := make([]string, len(items))
		for i, s := range items {
			quoted[i] = "'" + s + "'"
		}
		return strings.Join(quoted, ", ")
	},
	// indent prefixes every non-empty line of s with n spaces.
	"indent": func(n int, s string) string {
		pad := strings.Repeat(" ", n)
		lines := strings.Split(s, "\n")
		for i, l := range lines {
			if l != "" {
				lines[i] = pad + l
			}
		}
		return strings.Join(lines, "\n")
	},
}

// unexpandedTokenPattern detects Go template tokens that a template would emit
// literally. Vue mustaches ("{{ title }}") have no leading dot and do not match.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s?\.[A-Za-z_][A-Za-z0-9_.]*\s?-?\}\}|<no value>`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the template FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if the template source emits a
	// template token literally. Data values are never scanned.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys  fs.FS
	cache *lru.Cache[string, *template.Template]
}

// NewRenderer creates a Renderer backed by the given filesystem.
// Parsed templates are cached by name; the FS is assumed to be immutable.
func NewRenderer(fsys fs.FS) Renderer {
	cache, err := lru.New[string, *template.Template](defaultCacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(fmt.Sprintf("template cache: %v", err))
	}
	return &renderer{fsys: fsys, cache: cache}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	tmpl, err := r.lookup(templateName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	return buf.Bytes(), nil
}

// lookup returns the parsed template, parsing and caching it on first use.
func (r *renderer) lookup(templateName string) (*template.Template, error) {
	if tmpl, ok := r.cache.Get(templateName); ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}
	if err := checkLiterals(tmpl); err != nil {
		return nil, fmt.Errorf("%w in %s", err, templateName)
	}

	r.cache.Add(templateName, tmpl)
	return tmpl, nil
}

// checkLiterals rejects templates whose text or string constants contain a
// template token, which would reach the output unexpanded.
func checkLiterals(tmpl *template.Template) error {
	var found string
	visit := func(text string) {
		if found == "" {
			found = unexpandedTokenPattern.FindString(text)
		}
	}
	for _, t := range tmpl.Templates() {
		if t.Tree != nil {
			walkLiterals(t.Tree.Root, visit)
		}
	}
	if found != "" {
		return fmt.Errorf("%w: found %q", ErrUnexpandedToken, found)
	}
	return nil
}

func walkLiterals(node parse.Node, visit func(string)) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			walkLiterals(child, visit)
		}
	case *parse.TextNode:
		visit(string(n.Text))
	case *parse.StringNode:
		visit(n.Text)
	case *parse.ActionNode:
		walkLiterals(n.Pipe, visit)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			walkLiterals(cmd, visit)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			walkLiterals(arg, visit)
		}
	case *parse.IfNode:
		walkBranch(&n.BranchNode, visit)
	case *parse.RangeNode:
		walkBranch(&n.BranchNode, visit)
	case *parse.WithNode:
		walkBranch(&n.BranchNode, visit)
	case *parse.TemplateNode:
		walkLiterals(n.Pipe, visit)
	}
}

func walkBranch(b *parse.BranchNode, visit func(string)) {
	walkLiterals(b.Pipe, visit)
	walkLiterals(b.List, visit)
	walkLiterals(b.ElseList, visit)
}
