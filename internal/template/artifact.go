package template

import (
	"fmt"
	"path"
	"strings"
)

// Group names the template set that produced an artifact.
type Group string

const (
	// GroupConfig marks build-tooling artifacts shared by both frameworks.
	GroupConfig Group = "config"
	// GroupFramework marks framework source stubs.
	GroupFramework Group = "framework"
)

// Artifact is one generated file. Path is slash-separated and relative to the project root.
type Artifact struct {
	Path    string
	Content []byte
	Group   Group
}

// ArtifactSet is an insertion-ordered collection of artifacts with unique paths.
type ArtifactSet struct {
	items []Artifact
	index map[string]int
}

// NewArtifactSet returns an empty set.
func NewArtifactSet() *ArtifactSet {
	return &ArtifactSet{index: make(map[string]int)}
}

// Add appends a to the set. It fails with ErrDuplicateArtifact if another
// artifact already targets the same path.
func (s *ArtifactSet) Add(a Artifact) error {
	key := path.Clean(a.Path)
	if key == "." || strings.HasPrefix(key, "../") || key == ".." || path.IsAbs(key) {
		return fmt.Errorf("%w: %q", ErrInvalidArtifactPath, a.Path)
	}
	if i, ok := s.index[key]; ok {
		return fmt.Errorf("%w: %q (first produced by %s)", ErrDuplicateArtifact, a.Path, s.items[i].Group)
	}
	a.Path = key
	s.index[key] = len(s.items)
	s.items = append(s.items, a)
	return nil
}

// AddAll adds artifacts in order, stopping at the first error.
func (s *ArtifactSet) AddAll(artifacts []Artifact) error {
	for _, a := range artifacts {
		if err := s.Add(a); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of artifacts.
func (s *ArtifactSet) Len() int {
	return len(s.items)
}

// All returns the artifacts in insertion order.
func (s *ArtifactSet) All() []Artifact {
	out := make([]Artifact, len(s.items))
	copy(out, s.items)
	return out
}

// ByGroup returns the artifacts of one group in insertion order.
func (s *ArtifactSet) ByGroup(g Group) []Artifact {
	var out []Artifact
	for _, a := range s.items {
		if a.Group == g {
			out = append(out, a)
		}
	}
	return out
}

// Get returns the artifact at path p.
func (s *ArtifactSet) Get(p string) (Artifact, bool) {
	i, ok := s.index[path.Clean(p)]
	if !ok {
		return Artifact{}, false
	}
	return s.items[i], true
}

// Paths returns the artifact paths in insertion order.
func (s *ArtifactSet) Paths() []string {
	out := make([]string, len(s.items))
	for i, a := range s.items {
		out[i] = a.Path
	}
	return out
}
