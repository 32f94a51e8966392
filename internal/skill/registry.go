package skill

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	"github.com/bytedance/gg/gmap"

	"github.com/regression-io/claude-config-plugins/internal/consts"
	"github.com/regression-io/claude-config-plugins/internal/pkg/logs"
)

// Registry indexes the skills of one plugin's skills directory.
type Registry struct {
	dir    string
	skills map[string]*Skill
	issues []LoadIssue
	mu     sync.RWMutex
}

func NewRegistry(skillsDir string) *Registry {
	return &Registry{
		dir:    skillsDir,
		skills: make(map[string]*Skill, 32),
	}
}

// Load walks the skills directory for SKILL.md files. Files that fail to
// parse are recorded as issues and skipped; a missing directory is empty.
func (r *Registry) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.skills = make(map[string]*Skill, 32)
	r.issues = nil

	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		logs.CtxDebug(ctx, "skills directory does not exist: %s", r.dir)
		return nil
	}

	err := filepath.Walk(r.dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || info.Name() != consts.SkillFileName {
			return nil
		}

		oneSkill, parseErr := loadSkill(path)
		if parseErr != nil {
			logs.CtxDebug(ctx, "failed to load skill from %s: %v", path, parseErr)
			r.issues = append(r.issues, LoadIssue{Path: path, Err: parseErr})
			return nil
		}

		if existing, exists := r.skills[oneSkill.Name]; exists {
			r.issues = append(r.issues, LoadIssue{
				Path: path,
				Err:  fmt.Errorf("duplicate skill name %s (also in %s)", oneSkill.Name, existing.Path),
			})
			return nil
		}
		r.skills[oneSkill.Name] = oneSkill
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk skills directory: %w", err)
	}

	logs.CtxDebug(ctx, "loaded %d skills from %s", len(r.skills), r.dir)
	return nil
}

func loadSkill(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill file: %w", err)
	}

	header, body, ok := splitHeader(string(content))
	if !ok {
		return nil, fmt.Errorf("skill frontmatter is missing or unterminated")
	}

	oneSkill := &Skill{
		Content: body,
		Path:    path,
		Dir:     filepath.Base(filepath.Dir(path)),
	}
	for _, line := range header {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "name":
			oneSkill.Name = unquote(value)
		case "description":
			oneSkill.Description = unquote(value)
		}
	}
	if oneSkill.Name == "" {
		return nil, fmt.Errorf("skill name is required in frontmatter")
	}

	// Descriptions are written unquoted, so only the metadata block goes
	// through YAML and a parse failure there does not reject the skill.
	var meta struct {
		Metadata map[string]interface{} `yaml:"metadata"`
	}
	if _, err := frontmatter.Parse(bytes.NewReader(content), &meta); err == nil {
		oneSkill.Metadata = meta.Metadata
	}
	return oneSkill, nil
}

// splitHeader separates the lines between the leading "---" delimiters from
// the body that follows the closing one.
func splitHeader(content string) ([]string, string, bool) {
	rest, found := strings.CutPrefix(content, "---")
	if !found {
		return nil, content, false
	}
	rest = strings.TrimPrefix(rest, "\r")
	if !strings.HasPrefix(rest, "\n") {
		return nil, content, false
	}
	rest = rest[1:]

	var header []string
	for {
		line, tail, more := strings.Cut(rest, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "---" {
			return header, tail, true
		}
		if !more {
			return nil, content, false
		}
		header = append(header, line)
		rest = tail
	}
}

func unquote(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			return value[1 : len(value)-1]
		}
	}
	return value
}

func (r *Registry) Get(name string) (*Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	oneSkill, exists := r.skills[name]
	if !exists {
		return nil, fmt.Errorf("skill not found: %s", name)
	}
	return oneSkill, nil
}

// List returns the loaded skills in name order.
func (r *Registry) List() []*Skill {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skills := gmap.ToSlice(r.skills, func(_ string, v *Skill) *Skill { return v })
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills
}

func (r *Registry) Issues() []LoadIssue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]LoadIssue(nil), r.issues...)
}
