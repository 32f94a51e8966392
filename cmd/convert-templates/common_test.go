package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/regression-io/claude-config-plugins/internal/config"
)

func TestLoadConfig_FlagOverrides(t *testing.T) {
	dir := t.TempDir()

	var got *config.Config
	cmd := &cli.Command{
		Name:  "test",
		Flags: globalFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			_, cfg, err := loadConfig(ctx, c)
			got = cfg
			return err
		},
	}

	args := []string{"test",
		"--templates", filepath.Join(dir, "templates"),
		"--plugins", filepath.Join(dir, "plugins"),
		"--keep-going",
		"--log-level", "error",
	}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.TemplatesDir != filepath.Join(dir, "templates") || got.PluginsDir != filepath.Join(dir, "plugins") {
		t.Fatalf("dirs = %s, %s", got.TemplatesDir, got.PluginsDir)
	}
	if !got.KeepGoing || got.Logging.Level != "error" {
		t.Fatalf("config = %+v", got)
	}
	if len(got.Mappings) != len(config.Default().Mappings) {
		t.Fatalf("mappings = %d", len(got.Mappings))
	}
}

func TestConvert_DefaultAction(t *testing.T) {
	dir := t.TempDir()
	templates := filepath.Join(dir, "templates")
	plugins := filepath.Join(dir, "plugins")

	rule := filepath.Join(templates, "universal", "rules", "testing.md")
	if err := os.MkdirAll(filepath.Dir(rule), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(rule, []byte("# Testing Rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &cli.Command{
		Name:     "convert-templates",
		Flags:    globalFlags(),
		Action:   convertHwd.run,
		Commands: []*cli.Command{convertHwd.cmd()},
	}
	args := []string{"convert-templates", "--templates", templates, "--plugins", plugins, "--log-level", "error"}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(plugins, "coding-standards", "skills", "testing", "SKILL.md")); err != nil {
		t.Fatalf("skill not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(plugins, "python-support")); !os.IsNotExist(err) {
		t.Fatal("missing template must not produce a plugin")
	}
}
