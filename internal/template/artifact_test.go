package template

import (
	"errors"
	"slices"
	"testing"
)

func TestArtifactSet(t *testing.T) {
	t.Run("preserves_insertion_order", func(t *testing.T) {
		s := NewArtifactSet()
		err := s.AddAll([]Artifact{
			{Path: "package.json", Group: GroupConfig},
			{Path: "src/index.js", Group: GroupFramework},
			{Path: "public/index.html", Group: GroupConfig},
		})
		if err != nil {
			t.Fatalf("AddAll error: %v", err)
		}
		want := []string{"package.json", "src/index.js", "public/index.html"}
		if !slices.Equal(s.Paths(), want) {
			t.Errorf("Paths() = %v, want %v", s.Paths(), want)
		}
		if got := len(s.ByGroup(GroupConfig)); got != 2 {
			t.Errorf("config artifacts = %d, want 2", got)
		}
	})

	t.Run("duplicate_path", func(t *testing.T) {
		s := NewArtifactSet()
		if err := s.Add(Artifact{Path: "src/App.vue", Group: GroupFramework}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
		err := s.Add(Artifact{Path: "src/./App.vue", Group: GroupConfig})
		if !errors.Is(err, ErrDuplicateArtifact) {
			t.Errorf("expected ErrDuplicateArtifact, got: %v", err)
		}
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
	})

	t.Run("invalid_paths", func(t *testing.T) {
		for _, p := range []string{"", ".", "..", "../x", "/etc/passwd"} {
			if err := NewArtifactSet().Add(Artifact{Path: p}); !errors.Is(err, ErrInvalidArtifactPath) {
				t.Errorf("Add(%q) = %v, want ErrInvalidArtifactPath", p, err)
			}
		}
	})

	t.Run("get_cleans_path", func(t *testing.T) {
		s := NewArtifactSet()
		_ = s.Add(Artifact{Path: "src/styles/main.css", Content: []byte("x")})
		a, ok := s.Get("src//styles/main.css")
		if !ok || string(a.Content) != "x" {
			t.Errorf("Get() = %v, %v", a, ok)
		}
	})

	t.Run("all_returns_copy", func(t *testing.T) {
		s := NewArtifactSet()
		_ = s.Add(Artifact{Path: "a"})
		all := s.All()
		all[0].Path = "b"
		if s.Paths()[0] != "a" {
			t.Error("All() must not expose internal storage")
		}
	})
}
