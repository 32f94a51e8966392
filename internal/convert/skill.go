package convert

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/regression-io/claude-config-plugins/internal/consts"
)

var (
	headingPattern    = regexp.MustCompile(`(?m)^#\s+([^\r\n]+)\r?$`)
	ruleSuffixPattern = regexp.MustCompile(`(?i)rules?$`)
)

// DeriveDescription builds a skill description from the first top-level
// heading of a rule document: "# Testing Rules" becomes "Testing guidance".
// The suffix is only stripped when it ends the heading line, so trailing
// blanks keep it. Documents without such a heading get "<name> guidance";
// a heading of just "Rules" yields " guidance".
func DeriveDescription(content, name string) string {
	match := headingPattern.FindStringSubmatch(content)
	if match == nil {
		return name + " guidance"
	}

	title := strings.TrimSpace(ruleSuffixPattern.ReplaceAllString(match[1], ""))
	return title + " guidance"
}

// SkillDocument prepends the skill frontmatter to a rule document. The body
// is kept byte for byte.
func SkillDocument(content, name string) string {
	var sb strings.Builder
	sb.Grow(len(content) + len(name) + 64)
	sb.WriteString("---\n")
	sb.WriteString("name: " + name + "\n")
	sb.WriteString("description: " + DeriveDescription(content, name) + "\n")
	sb.WriteString("---\n\n")
	sb.WriteString(content)
	return sb.String()
}

// RuleToSkill reads the rule file at path and returns its skill form.
func RuleToSkill(path, name string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read rule %s: %w", path, err)
	}
	return SkillDocument(string(raw), name), nil
}

// SkillName derives the skill identifier of a rule file name.
func SkillName(fileName string) string {
	return strings.TrimSuffix(fileName, consts.MarkdownExt)
}
