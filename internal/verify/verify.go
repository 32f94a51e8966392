// Package verify checks generated plugin directories for consistency.
package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bytedance/gg/gslice"
	"github.com/bytedance/sonic"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/regression-io/claude-config-plugins/internal/consts"
	"github.com/regression-io/claude-config-plugins/internal/convert"
	"github.com/regression-io/claude-config-plugins/internal/pkg/logs"
	"github.com/regression-io/claude-config-plugins/internal/skill"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type (
	Issue struct {
		Severity Severity
		Path     string
		Message  string
	}

	PluginReport struct {
		Name     string
		Dir      string
		Skills   int
		Commands int
		Issues   []Issue
	}

	Report struct {
		Plugins []*PluginReport
	}
)

func (p *PluginReport) add(sev Severity, path, format string, v ...interface{}) {
	p.Issues = append(p.Issues, Issue{Severity: sev, Path: path, Message: fmt.Sprintf(format, v...)})
}

func (r *Report) count(sev Severity) int {
	n := 0
	for _, p := range r.Plugins {
		for _, issue := range p.Issues {
			if issue.Severity == sev {
				n++
			}
		}
	}
	return n
}

func (r *Report) Errors() int   { return r.count(SeverityError) }
func (r *Report) Warnings() int { return r.count(SeverityWarning) }

// Verifier checks plugins against the manifest schema and the skill layout.
type Verifier struct {
	schema     *jsonschema.Schema
	keywordTag string
}

func NewVerifier(keywordTag string) (*Verifier, error) {
	schema, err := compileManifestSchema()
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}
	return &Verifier{schema: schema, keywordTag: keywordTag}, nil
}

// Verify checks each named plugin under pluginsDir. Problems found in the
// plugins are returned in the report; the error is reserved for failures to
// read the tree itself.
func (v *Verifier) Verify(ctx context.Context, pluginsDir string, names []string) (*Report, error) {
	report := &Report{Plugins: make([]*PluginReport, 0, len(names))}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		pr, err := v.VerifyPlugin(ctx, filepath.Join(pluginsDir, name))
		if err != nil {
			return report, err
		}
		report.Plugins = append(report.Plugins, pr)
	}
	return report, nil
}

func (v *Verifier) VerifyPlugin(ctx context.Context, dir string) (*PluginReport, error) {
	pr := &PluginReport{Name: filepath.Base(dir), Dir: dir}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		pr.add(SeverityError, dir, "plugin directory does not exist")
		return pr, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat plugin dir: %w", err)
	}
	if !info.IsDir() {
		pr.add(SeverityError, dir, "plugin path is not a directory")
		return pr, nil
	}

	if err := v.checkManifest(pr); err != nil {
		return nil, err
	}
	if err := v.checkSkills(ctx, pr); err != nil {
		return nil, err
	}
	if err := v.countCommands(pr); err != nil {
		return nil, err
	}

	logs.CtxDebug(ctx, "[verify] %s: %d skills, %d commands, %d issues", pr.Name, pr.Skills, pr.Commands, len(pr.Issues))
	return pr, nil
}

func (v *Verifier) checkManifest(pr *PluginReport) error {
	path := filepath.Join(pr.Dir, consts.PluginMetaDirName, consts.PluginManifestFile)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		pr.add(SeverityError, path, "manifest is missing")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var doc interface{}
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		pr.add(SeverityError, path, "manifest is not valid JSON: %v", err)
		return nil
	}
	if err := v.schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return fmt.Errorf("validate manifest: %w", err)
		}
		for _, msg := range schemaMessages(verr) {
			pr.add(SeverityError, path, "schema: %s", msg)
		}
		return nil
	}

	var m convert.Manifest
	if err := sonic.Unmarshal(raw, &m); err != nil {
		pr.add(SeverityError, path, "manifest does not decode: %v", err)
		return nil
	}
	if m.Name != pr.Name {
		pr.add(SeverityError, path, "manifest name %q does not match directory %q", m.Name, pr.Name)
	}
	if _, err := semver.NewVersion(m.Version); err != nil {
		pr.add(SeverityError, path, "version %q is not semver: %v", m.Version, err)
	}
	if v.keywordTag != "" && !gslice.Contains(m.Keywords, v.keywordTag) {
		pr.add(SeverityWarning, path, "keywords do not contain %q", v.keywordTag)
	}
	if strings.TrimSpace(m.Description) == "" {
		pr.add(SeverityWarning, path, "manifest description is empty")
	}
	return nil
}

func (v *Verifier) checkSkills(ctx context.Context, pr *PluginReport) error {
	reg := skill.NewRegistry(filepath.Join(pr.Dir, consts.SkillsDirName))
	if err := reg.Load(ctx); err != nil {
		return err
	}

	for _, issue := range reg.Issues() {
		pr.add(SeverityError, issue.Path, "%v", issue.Err)
	}

	skills := reg.List()
	pr.Skills = len(skills)
	for _, s := range skills {
		if s.Name != s.Dir {
			pr.add(SeverityError, s.Path, "skill name %q does not match directory %q", s.Name, s.Dir)
		}
		if strings.TrimSpace(s.Description) == "" {
			pr.add(SeverityError, s.Path, "skill description is empty")
		}
		if !hasTitleHeading(s.Content) {
			pr.add(SeverityWarning, s.Path, "skill body has no level-1 heading")
		}
	}
	return nil
}

func (v *Verifier) countCommands(pr *PluginReport) error {
	entries, err := os.ReadDir(filepath.Join(pr.Dir, consts.CommandsDirName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read commands dir: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), consts.MarkdownExt) {
			pr.Commands++
		}
	}
	return nil
}
