package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/regression-io/claude-config-plugins/internal/config"
	"github.com/regression-io/claude-config-plugins/internal/consts"
	"github.com/regression-io/claude-config-plugins/internal/pkg/logs"
)

var ErrTemplateNotFound = errors.New("template not found")

type (
	// Result describes what one template conversion produced.
	Result struct {
		Plugin   string
		Dir      string
		Manifest *Manifest
		Skills   []string
		Commands []string
		Includes []*IncludeResult
	}

	// IncludeResult records the merge of one included template. Added skills
	// were written, Skipped ones were already claimed by an earlier source.
	IncludeResult struct {
		Include string
		Found   bool
		Added   []string
		Skipped []string
	}
)

// Total is the number of rule files the include offered.
func (i *IncludeResult) Total() int {
	return len(i.Added) + len(i.Skipped)
}

// SkillNames lists every skill in the plugin, own rules first, then included
// ones in merge order.
func (r *Result) SkillNames() []string {
	names := append([]string{}, r.Skills...)
	for _, inc := range r.Includes {
		names = append(names, inc.Added...)
	}
	return names
}

// Converter turns template directories into plugin directories.
type Converter struct {
	cfg *config.Config
	out *Reporter
}

func NewConverter(cfg *config.Config, out *Reporter) *Converter {
	if out == nil {
		out = NewReporter(nil)
	}
	return &Converter{cfg: cfg, out: out}
}

// mergeState tracks first-writer-wins ownership of skill identifiers and the
// templates already merged into the plugin being built.
type mergeState struct {
	skillsDir string
	claimed   map[string]string
	visited   map[string]struct{}
}

func (m *mergeState) claim(name, source string) bool {
	if _, ok := m.claimed[name]; ok {
		return false
	}
	m.claimed[name] = source
	return true
}

// ConvertTemplate builds plugin from the template at templatePath. Every
// file it writes is overwritten on re-runs. Include precedence is decided by
// the identifiers claimed during this call, not by what is on disk: a skill
// directory left by an earlier run or written by hand is replaced by an
// include that provides the same identifier.
func (c *Converter) ConvertTemplate(ctx context.Context, templatePath, plugin string) (*Result, error) {
	ok, err := dirExists(templatePath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templatePath)
	}

	pluginDir := filepath.Join(c.cfg.PluginsDir, plugin)
	metaDir := filepath.Join(pluginDir, consts.PluginMetaDirName)
	if err := os.MkdirAll(metaDir, consts.DirMode); err != nil {
		return nil, fmt.Errorf("create plugin meta dir: %w", err)
	}

	desc, err := LoadDescriptor(templatePath, plugin)
	if err != nil {
		return nil, err
	}

	res := &Result{Plugin: plugin, Dir: pluginDir}
	res.Manifest = BuildManifest(c.cfg, plugin, desc)
	manifestPath, err := WriteManifest(metaDir, res.Manifest)
	if err != nil {
		return nil, err
	}
	logs.CtxDebug(ctx, "[convert] wrote manifest %s", manifestPath)

	state := &mergeState{
		skillsDir: filepath.Join(pluginDir, consts.SkillsDirName),
		claimed:   make(map[string]string),
		visited:   map[string]struct{}{filepath.Clean(templatePath): {}},
	}

	rulesDir := filepath.Join(templatePath, consts.RulesDirName)
	hasRules, err := dirExists(rulesDir)
	if err != nil {
		return nil, err
	}
	if hasRules {
		res.Skills, err = c.convertRules(ctx, rulesDir, state)
		if err != nil {
			return nil, err
		}
		c.out.RulesConverted(len(res.Skills))
	}

	commandsDir := filepath.Join(templatePath, consts.CommandsDirName)
	hasCommands, err := dirExists(commandsDir)
	if err != nil {
		return nil, err
	}
	if hasCommands {
		res.Commands, err = c.copyCommands(ctx, commandsDir, filepath.Join(pluginDir, consts.CommandsDirName))
		if err != nil {
			return nil, err
		}
		c.out.CommandsCopied(len(res.Commands))
	}

	if len(desc.Includes) > 0 {
		c.out.Includes(desc.Includes)
		if err := c.mergeIncludes(ctx, desc.Includes, state, res); err != nil {
			return nil, err
		}
	}

	c.out.Created(plugin)
	return res, nil
}

// convertRules writes one skill per rule file of the template itself and
// claims its identifiers ahead of any include.
func (c *Converter) convertRules(ctx context.Context, rulesDir string, state *mergeState) ([]string, error) {
	files, err := listMarkdown(rulesDir)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, file := range files {
		name := SkillName(file)
		state.claim(name, rulesDir)
		if err := c.writeSkill(ctx, filepath.Join(rulesDir, file), state.skillsDir, name); err != nil {
			return nil, err
		}
		written = append(written, name)
	}
	return written, nil
}

func (c *Converter) writeSkill(ctx context.Context, rulePath, skillsDir, name string) error {
	skillDir := filepath.Join(skillsDir, name)
	if err := os.MkdirAll(skillDir, consts.DirMode); err != nil {
		return fmt.Errorf("create skill dir: %w", err)
	}

	content, err := RuleToSkill(rulePath, name)
	if err != nil {
		return err
	}

	dest := filepath.Join(skillDir, consts.SkillFileName)
	if err := os.WriteFile(dest, []byte(content), consts.FileMode); err != nil {
		return fmt.Errorf("write skill %s: %w", name, err)
	}
	logs.CtxDebug(ctx, "[convert] %s -> %s", rulePath, dest)
	return nil
}

func (c *Converter) copyCommands(ctx context.Context, srcDir, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, consts.DirMode); err != nil {
		return nil, fmt.Errorf("create commands dir: %w", err)
	}

	files, err := listMarkdown(srcDir)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		src := filepath.Join(srcDir, file)
		raw, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read command %s: %w", src, err)
		}
		dest := filepath.Join(destDir, file)
		if err := os.WriteFile(dest, raw, consts.FileMode); err != nil {
			return nil, fmt.Errorf("write command %s: %w", dest, err)
		}
		logs.CtxDebug(ctx, "[convert] copied %s -> %s", src, dest)
	}
	return files, nil
}

// mergeIncludes folds the rules of each include into the plugin, in
// declaration order. Templates already merged are not visited again, which
// also cuts include cycles when transitive resolution is on.
func (c *Converter) mergeIncludes(ctx context.Context, includes []string, state *mergeState, res *Result) error {
	for _, include := range includes {
		includePath := filepath.Clean(filepath.Join(c.cfg.TemplatesDir, filepath.FromSlash(include)))
		if _, seen := state.visited[includePath]; seen {
			logs.CtxDebug(ctx, "[convert] include %s already merged, skipping", include)
			continue
		}
		state.visited[includePath] = struct{}{}

		inc := &IncludeResult{Include: include}
		res.Includes = append(res.Includes, inc)

		found, err := dirExists(includePath)
		if err != nil {
			return err
		}
		if !found {
			logs.CtxWarn(ctx, "include %s of plugin %s not found at %s", include, res.Plugin, includePath)
			c.out.IncludeNotFound(include)
			continue
		}
		inc.Found = true

		rulesDir := filepath.Join(includePath, consts.RulesDirName)
		hasRules, err := dirExists(rulesDir)
		if err != nil {
			return err
		}
		if hasRules {
			if err := c.mergeRules(ctx, rulesDir, state, inc); err != nil {
				return err
			}
			c.out.Included(inc)
		}

		if !c.cfg.Includes.Transitive {
			continue
		}
		nested, err := LoadDescriptor(includePath, "")
		if err != nil {
			return err
		}
		if len(nested.Includes) > 0 {
			if err := c.mergeIncludes(ctx, nested.Includes, state, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Converter) mergeRules(ctx context.Context, rulesDir string, state *mergeState, inc *IncludeResult) error {
	files, err := listMarkdown(rulesDir)
	if err != nil {
		return err
	}

	for _, file := range files {
		name := SkillName(file)
		if !state.claim(name, inc.Include) {
			logs.CtxDebug(ctx, "[convert] skill %s from %s shadowed by %s", name, inc.Include, state.claimed[name])
			inc.Skipped = append(inc.Skipped, name)
			continue
		}
		if err := c.writeSkill(ctx, filepath.Join(rulesDir, file), state.skillsDir, name); err != nil {
			return err
		}
		inc.Added = append(inc.Added, name)
	}
	return nil
}

// listMarkdown returns the regular .md files of dir in name order.
func listMarkdown(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), consts.MarkdownExt) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}
	return true, nil
}
