package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/regression-io/claude-config-plugins/internal/config"
	"github.com/regression-io/claude-config-plugins/internal/consts"
)

type (
	// Manifest is the generated .claude-plugin/plugin.json document. Field
	// order is the serialized key order.
	Manifest struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Version     string   `json:"version"`
		Author      Author   `json:"author"`
		Homepage    string   `json:"homepage"`
		Keywords    []string `json:"keywords"`
	}

	Author struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
)

// BuildManifest assembles the manifest of plugin. The static description
// table wins over the template descriptor.
func BuildManifest(cfg *config.Config, plugin string, desc *Descriptor) *Manifest {
	description := cfg.DescriptionFor(plugin)
	if description == "" && desc != nil {
		description = desc.Description
	}

	return &Manifest{
		Name:        plugin,
		Description: description,
		Version:     cfg.Plugin.Version,
		Author: Author{
			Name:  cfg.Plugin.AuthorName,
			Email: cfg.Plugin.AuthorEmail,
		},
		Homepage: cfg.Plugin.Homepage,
		Keywords: []string{cfg.Plugin.KeywordTag, strings.ReplaceAll(plugin, "-", " ")},
	}
}

// MarshalManifest renders m as two-space indented JSON without a trailing
// newline.
func MarshalManifest(m *Manifest) ([]byte, error) {
	return sonic.ConfigDefault.MarshalIndent(m, "", "  ")
}

// WriteManifest writes m into metaDir, replacing any previous manifest.
func WriteManifest(metaDir string, m *Manifest) (string, error) {
	raw, err := MarshalManifest(m)
	if err != nil {
		return "", fmt.Errorf("marshal plugin manifest: %w", err)
	}

	path := filepath.Join(metaDir, consts.PluginManifestFile)
	if err := os.WriteFile(path, raw, consts.FileMode); err != nil {
		return "", fmt.Errorf("write plugin manifest: %w", err)
	}
	return path, nil
}
