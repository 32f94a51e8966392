package skill

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, dir, content string) string {
	t.Helper()
	path := filepath.Join(root, dir, "SKILL.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistry_Load(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "testing", "---\nname: testing\ndescription: Testing guidance\n---\n\n# Testing Rules\n\nAlways write tests.")
	writeSkill(t, root, "api-design", "---\nname: api-design\ndescription: API Design guidance\n---\n\n# API Design Rules\n")

	r := NewRegistry(root)
	require.NoError(t, r.Load(context.Background()))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "api-design", list[0].Name)
	assert.Equal(t, "testing", list[1].Name)

	s, err := r.Get("testing")
	require.NoError(t, err)
	assert.Equal(t, "Testing guidance", s.Description)
	assert.Equal(t, "testing", s.Dir)
	assert.Contains(t, s.Content, "Always write tests.")
	assert.NotContains(t, s.Content, "name: testing", "frontmatter must be stripped from content")
	assert.Empty(t, r.Issues())
}

func TestRegistry_Issues(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "nameless", "---\ndescription: no name\n---\n\nbody")
	writeSkill(t, root, "one", "---\nname: same\ndescription: first\n---\n")
	writeSkill(t, root, "two", "---\nname: same\ndescription: second\n---\n")

	r := NewRegistry(root)
	require.NoError(t, r.Load(context.Background()))

	assert.Len(t, r.List(), 1)
	assert.Len(t, r.Issues(), 2)
}

func TestRegistry_MissingDir(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, r.Load(context.Background()))

	assert.Empty(t, r.List())
	_, err := r.Get("x")
	assert.Error(t, err, "unknown skill should not resolve")
}

func TestRegistry_UnquotedDescriptions(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "api", "---\nname: api\ndescription: API: Design guidance\n---\n\n# API: Design Rules\n")
	writeSkill(t, root, "code", "---\nname: code\ndescription: `go vet` guidance\n---\n\n# `go vet` Rules\n")
	writeSkill(t, root, "draft", "---\nname: draft\ndescription: [Draft] Naming guidance\n---\n\n# [Draft] Naming Rules\n")
	writeSkill(t, root, "bare", "---\nname: bare\ndescription:  guidance\n---\n\n# Rules\n")

	r := NewRegistry(root)
	require.NoError(t, r.Load(context.Background()))
	require.Empty(t, r.Issues())

	want := map[string]string{
		"api":   "API: Design guidance",
		"code":  "`go vet` guidance",
		"draft": "[Draft] Naming guidance",
		"bare":  "guidance",
	}
	for name, desc := range want {
		s, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, desc, s.Description, name)
		assert.Contains(t, s.Content, "# ", name)
	}
}

func TestRegistry_Metadata(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "meta", "---\nname: \"meta\"\ndescription: Meta guidance\nmetadata:\n  owner: docs\n---\n\nbody\n")

	r := NewRegistry(root)
	require.NoError(t, r.Load(context.Background()))

	s, err := r.Get("meta")
	require.NoError(t, err)
	assert.Equal(t, "docs", s.Metadata["owner"])
	assert.Equal(t, "\nbody\n", s.Content)
}

func TestRegistry_UnterminatedHeader(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "open", "---\nname: open\ndescription: never closed\n")
	writeSkill(t, root, "none", "# Plain markdown\n")

	r := NewRegistry(root)
	require.NoError(t, r.Load(context.Background()))

	assert.Empty(t, r.List())
	assert.Len(t, r.Issues(), 2)
}
