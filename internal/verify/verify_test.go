package verify

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regression-io/claude-config-plugins/internal/config"
	"github.com/regression-io/claude-config-plugins/internal/convert"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func buildPlugins(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		TemplatesDir: filepath.Join(root, "templates"),
		PluginsDir:   filepath.Join(root, "plugins"),
		Mappings: []config.Mapping{
			{Template: "universal", Plugin: "coding-standards", Description: "Universal practices"},
		},
	}
	require.NoError(t, cfg.Validate())
	writeFile(t, filepath.Join(cfg.TemplatesDir, "universal", "rules", "testing.md"), "# Testing Rules\n\nAlways write tests.\n")
	writeFile(t, filepath.Join(cfg.TemplatesDir, "universal", "commands", "review.md"), "Review the diff.\n")

	_, err := convert.NewRunner(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	return cfg
}

func issuesOf(pr *PluginReport, sev Severity) []string {
	var out []string
	for _, issue := range pr.Issues {
		if issue.Severity == sev {
			out = append(out, issue.Message)
		}
	}
	return out
}

func TestVerify_ConvertedPluginIsClean(t *testing.T) {
	cfg := buildPlugins(t)

	v, err := NewVerifier(cfg.Plugin.KeywordTag)
	require.NoError(t, err)
	report, err := v.Verify(context.Background(), cfg.PluginsDir, cfg.PluginNames())
	require.NoError(t, err)
	require.Len(t, report.Plugins, 1)

	pr := report.Plugins[0]
	assert.Empty(t, pr.Issues)
	assert.Equal(t, 1, pr.Skills)
	assert.Equal(t, 1, pr.Commands)
}

func TestVerify_HeadingsThatAreNotPlainYAML(t *testing.T) {
	cfg := buildPlugins(t)
	rules := filepath.Join(cfg.TemplatesDir, "universal", "rules")
	writeFile(t, filepath.Join(rules, "api.md"), "# API: Design Rules\n\nVersion every route.\n")
	writeFile(t, filepath.Join(rules, "code.md"), "# `go vet` Rules\n\nRun it in CI.\n")
	writeFile(t, filepath.Join(rules, "draft.md"), "# [Draft] Naming Rules\n\nPrefer short names.\n")
	_, err := convert.NewRunner(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	v, err := NewVerifier(cfg.Plugin.KeywordTag)
	require.NoError(t, err)
	report, err := v.Verify(context.Background(), cfg.PluginsDir, cfg.PluginNames())
	require.NoError(t, err)
	require.Len(t, report.Plugins, 1)

	pr := report.Plugins[0]
	assert.Empty(t, pr.Issues)
	assert.Equal(t, 4, pr.Skills)
	assert.Equal(t, 0, report.Errors())
}

func TestVerify_MissingPlugin(t *testing.T) {
	v, err := NewVerifier("claude-config")
	require.NoError(t, err)
	report, err := v.Verify(context.Background(), t.TempDir(), []string{"ghost"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Errors())
}

func TestVerify_ManifestProblems(t *testing.T) {
	cfg := buildPlugins(t)
	manifest := filepath.Join(cfg.PluginsDir, "coding-standards", ".claude-plugin", "plugin.json")
	writeFile(t, manifest, `{
  "name": "other-name",
  "description": "x",
  "version": "one",
  "author": {"name": "me"},
  "homepage": "https://example.com",
  "keywords": ["misc"]
}`)

	v, _ := NewVerifier(cfg.Plugin.KeywordTag)
	pr, err := v.VerifyPlugin(context.Background(), filepath.Join(cfg.PluginsDir, "coding-standards"))
	if err != nil {
		t.Fatalf("VerifyPlugin: %v", err)
	}

	errs := strings.Join(issuesOf(pr, SeverityError), "\n")
	if !strings.Contains(errs, "does not match directory") || !strings.Contains(errs, "not semver") {
		t.Fatalf("errors = %s", errs)
	}
	if warns := issuesOf(pr, SeverityWarning); len(warns) != 1 || !strings.Contains(warns[0], "claude-config") {
		t.Fatalf("warnings = %v", warns)
	}
}

func TestVerify_SchemaViolation(t *testing.T) {
	cfg := buildPlugins(t)
	manifest := filepath.Join(cfg.PluginsDir, "coding-standards", ".claude-plugin", "plugin.json")
	writeFile(t, manifest, `{"name": "coding-standards", "keywords": "not-a-list"}`)

	v, _ := NewVerifier(cfg.Plugin.KeywordTag)
	pr, err := v.VerifyPlugin(context.Background(), filepath.Join(cfg.PluginsDir, "coding-standards"))
	if err != nil {
		t.Fatalf("VerifyPlugin: %v", err)
	}
	errs := issuesOf(pr, SeverityError)
	if len(errs) == 0 {
		t.Fatal("expected schema errors")
	}
	for _, e := range errs {
		if !strings.HasPrefix(e, "schema: ") {
			t.Fatalf("unexpected error %q", e)
		}
	}
}

func TestVerify_SkillProblems(t *testing.T) {
	cfg := buildPlugins(t)
	skills := filepath.Join(cfg.PluginsDir, "coding-standards", "skills")
	writeFile(t, filepath.Join(skills, "renamed", "SKILL.md"), "---\nname: original\ndescription: Original guidance\n---\n\n# Original\n")
	writeFile(t, filepath.Join(skills, "plain", "SKILL.md"), "---\nname: plain\ndescription: plain guidance\n---\n\nno heading\n")
	writeFile(t, filepath.Join(skills, "broken", "SKILL.md"), "---\ndescription: nameless\n---\n\n# Broken\n")

	v, _ := NewVerifier(cfg.Plugin.KeywordTag)
	pr, err := v.VerifyPlugin(context.Background(), filepath.Join(cfg.PluginsDir, "coding-standards"))
	if err != nil {
		t.Fatalf("VerifyPlugin: %v", err)
	}

	if pr.Skills != 3 {
		t.Fatalf("skills = %d", pr.Skills)
	}
	errs := strings.Join(issuesOf(pr, SeverityError), "\n")
	if !strings.Contains(errs, `skill name "original" does not match directory "renamed"`) {
		t.Fatalf("errors = %s", errs)
	}
	if !strings.Contains(errs, "name is required") {
		t.Fatalf("errors = %s", errs)
	}
	warns := issuesOf(pr, SeverityWarning)
	if len(warns) != 1 || !strings.Contains(warns[0], "level-1 heading") {
		t.Fatalf("warnings = %v", warns)
	}
}

func TestHasTitleHeading(t *testing.T) {
	cases := map[string]bool{
		"# Title\n\nbody":                 true,
		"intro\n\n# Later\n":              true,
		"## Sub only\n":                   false,
		"```\n# inside code\n```\n":       false,
		"":                                false,
		"plain paragraph with # in text": false,
	}
	for body, want := range cases {
		if got := hasTitleHeading(body); got != want {
			t.Errorf("hasTitleHeading(%q) = %v, want %v", body, got, want)
		}
	}
}
