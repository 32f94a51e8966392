package config

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

type (
	Config struct {
		TemplatesDir string         `yaml:"templates_dir" json:"templates_dir"`
		PluginsDir   string         `yaml:"plugins_dir" json:"plugins_dir"`
		KeepGoing    bool           `yaml:"keep_going" json:"keep_going"`
		Plugin       PluginConfig   `yaml:"plugin" json:"plugin"`
		Includes     IncludesConfig `yaml:"includes" json:"includes"`
		Mappings     []Mapping      `yaml:"mappings" json:"mappings"`
		Logging      LoggingConfig  `yaml:"logging" json:"logging"`
	}

	// PluginConfig holds the constant fields of every generated manifest.
	PluginConfig struct {
		Version     string `yaml:"version" json:"version"`
		AuthorName  string `yaml:"author_name" json:"author_name"`
		AuthorEmail string `yaml:"author_email" json:"author_email"`
		Homepage    string `yaml:"homepage" json:"homepage"`
		KeywordTag  string `yaml:"keyword_tag" json:"keyword_tag"`
	}

	IncludesConfig struct {
		// Transitive also merges the includes declared by included templates.
		Transitive bool `yaml:"transitive" json:"transitive"`
	}

	// Mapping binds a template directory, relative to TemplatesDir, to the
	// plugin it produces. Order in Config.Mappings is processing order.
	Mapping struct {
		Template    string `yaml:"template" json:"template"`
		Plugin      string `yaml:"plugin" json:"plugin"`
		Description string `yaml:"description,omitempty" json:"description,omitempty"`
	}

	LoggingConfig struct {
		Level      string `yaml:"level" json:"level"`   // debug, info, warn, error
		Format     string `yaml:"format" json:"format"` // json, text
		Output     string `yaml:"output" json:"output"` // stdout, stderr, file, both
		File       string `yaml:"file,omitempty" json:"file,omitempty"`
		MaxSize    int    `yaml:"max_size,omitempty" json:"max_size,omitempty"` // MB
		MaxBackups int    `yaml:"max_backups,omitempty" json:"max_backups,omitempty"`
		MaxAge     int    `yaml:"max_age,omitempty" json:"max_age,omitempty"` // days
	}
)

// DescriptionFor returns the static description configured for plugin, or
// an empty string when the table has none.
func (c *Config) DescriptionFor(plugin string) string {
	if c == nil {
		return ""
	}
	for _, m := range c.Mappings {
		if m.Plugin == plugin && strings.TrimSpace(m.Description) != "" {
			return m.Description
		}
	}
	return ""
}

// PluginNames returns the configured plugin names in mapping order.
func (c *Config) PluginNames() []string {
	names := make([]string, 0, len(c.Mappings))
	for _, m := range c.Mappings {
		names = append(names, m.Plugin)
	}
	return names
}

// Clone .
func (c *Config) Clone() (*Config, error) {
	if c == nil {
		return nil, fmt.Errorf("config is nil")
	}

	raw, err := sonic.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	var cloned Config
	if err := sonic.Unmarshal(raw, &cloned); err != nil {
		return nil, fmt.Errorf("unmarshal config clone: %w", err)
	}

	return &cloned, nil
}
