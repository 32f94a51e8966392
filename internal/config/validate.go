package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/regression-io/claude-config-plugins/internal/consts"
	"github.com/regression-io/claude-config-plugins/internal/pkg/logs"
)

const (
	defaultLogLevel  = "warn"
	defaultLogOutput = "stderr"
)

// Validate .
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}

	c.TemplatesDir = strings.TrimSpace(c.TemplatesDir)
	if c.TemplatesDir == "" {
		c.TemplatesDir = consts.DefaultTemplatesDir
	}
	c.PluginsDir = strings.TrimSpace(c.PluginsDir)
	if c.PluginsDir == "" {
		c.PluginsDir = consts.DefaultPluginsDir
	}

	if err := c.Plugin.Validate(); err != nil {
		return fmt.Errorf("plugin: %w", err)
	}

	c.Logging.Level = strings.TrimSpace(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Output = strings.TrimSpace(c.Logging.Output)
	if c.Logging.Output == "" {
		c.Logging.Output = defaultLogOutput
	}

	seen := make(map[string]string, len(c.Mappings))
	for i := range c.Mappings {
		one := &c.Mappings[i]
		one.Template = filepath.ToSlash(strings.Trim(strings.TrimSpace(one.Template), "/"))
		one.Plugin = strings.TrimSpace(one.Plugin)
		one.Description = strings.TrimSpace(one.Description)

		if one.Template == "" {
			return fmt.Errorf("mappings[%d]: template cannot be empty", i)
		}
		if one.Plugin == "" {
			return fmt.Errorf("mappings[%d]: plugin cannot be empty", i)
		}
		if strings.ContainsAny(one.Plugin, `/\`) {
			return fmt.Errorf("mappings[%d]: plugin name %q must not contain path separators", i, one.Plugin)
		}

		// Later entries overwrite earlier output, which is allowed but rarely intended.
		if prev, ok := seen[one.Plugin]; ok {
			logs.Warn("plugin %s is produced by both %s and %s", one.Plugin, prev, one.Template)
		}
		seen[one.Plugin] = one.Template
	}

	return nil
}

func (p *PluginConfig) Validate() error {
	p.Version = strings.TrimSpace(p.Version)
	if p.Version == "" {
		p.Version = consts.DefaultPluginVersion
	}
	if _, err := semver.NewVersion(p.Version); err != nil {
		return fmt.Errorf("invalid version %q: %w", p.Version, err)
	}

	if strings.TrimSpace(p.AuthorName) == "" {
		p.AuthorName = consts.DefaultAuthorName
	}
	if strings.TrimSpace(p.AuthorEmail) == "" {
		p.AuthorEmail = consts.DefaultAuthorEmail
	}
	if strings.TrimSpace(p.Homepage) == "" {
		p.Homepage = consts.DefaultHomepage
	}
	if strings.TrimSpace(p.KeywordTag) == "" {
		p.KeywordTag = consts.DefaultKeywordTag
	}
	return nil
}
