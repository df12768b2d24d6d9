// Package content holds the portfolio sections shown in the content panel.
//
// Sections are stored as YAML with Markdown bodies. A built-in set is
// embedded in the binary; [LoadFile] reads an override from disk and
// [Watch] reloads it whenever the file changes.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	strip "github.com/grokify/html-strip-tags-go"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

//go:embed sections.yaml
var defaultSections []byte

// ErrNoSections is returned when a source defines no sections.
var ErrNoSections = errors.New("content: no sections defined")

// Section is one entry of the portfolio.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	// Body is the Markdown source.
	Body string `yaml:"body"`
	// HTML is Body rendered by the store.
	HTML string `yaml:"-"`
}

type document struct {
	Sections []Section `yaml:"sections"`
}

// Store is an immutable, ordered set of sections.
type Store struct {
	sections []Section
	index    map[string]int
}

// Load parses YAML section data and renders every body to HTML.
func Load(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse sections: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, ErrNoSections
	}
	st := &Store{
		sections: doc.Sections,
		index:    make(map[string]int, len(doc.Sections)),
	}
	for i := range st.sections {
		sec := &st.sections[i]
		sec.ID = strings.TrimSpace(sec.ID)
		if sec.ID == "" {
			return nil, fmt.Errorf("section %d: missing id", i)
		}
		if _, dup := st.index[sec.ID]; dup {
			return nil, fmt.Errorf("section %q: duplicate id", sec.ID)
		}
		st.index[sec.ID] = i
		sec.HTML = renderMarkdown(sec.Body)
	}
	return st, nil
}

// LoadFile reads and parses the section file at path.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sections %s: %w", path, err)
	}
	st, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load sections %s: %w", path, err)
	}
	return st, nil
}

// Default returns the built-in sections.
func Default() *Store {
	st, err := Load(defaultSections)
	if err != nil {
		panic("content: embedded sections are invalid: " + err.Error())
	}
	return st
}

// Lookup returns the section with the given id.
func (s *Store) Lookup(id string) (Section, bool) {
	i, ok := s.index[id]
	if !ok {
		return Section{}, false
	}
	return s.sections[i], true
}

// IDs returns the section identifiers in source order.
func (s *Store) IDs() []string {
	ids := make([]string, len(s.sections))
	for i, sec := range s.sections {
		ids[i] = sec.ID
	}
	return ids
}

// Sections returns a copy of all sections in source order.
func (s *Store) Sections() []Section {
	return append([]Section(nil), s.sections...)
}

// Len returns the number of sections.
func (s *Store) Len() int {
	return len(s.sections)
}

// PlainText returns the section body with all markup removed and runs of
// blank lines collapsed. Returns "" for unknown ids.
func (s *Store) PlainText(id string) string {
	sec, ok := s.Lookup(id)
	if !ok {
		return ""
	}
	text := html.UnescapeString(strip.StripTags(sec.HTML))
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func renderMarkdown(src string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank,
	})
	return string(markdown.ToHTML([]byte(src), p, r))
}
