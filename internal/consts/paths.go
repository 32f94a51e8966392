package consts

const (
	VERSION = "0.3.0"

	DefaultTemplatesDir = "/Users/ruze/reg/my/claude-config/templates"
	DefaultPluginsDir   = "/Users/ruze/reg/my/claude-config-plugins/plugins"
	DefaultConfigFile   = "convert-templates.yaml"

	TemplateDescriptorFile = "template.json"
	RulesDirName           = "rules"
	CommandsDirName        = "commands"
	MarkdownExt            = ".md"

	PluginMetaDirName  = ".claude-plugin"
	PluginManifestFile = "plugin.json"
	SkillsDirName      = "skills"
	SkillFileName      = "SKILL.md"
)

const (
	DirMode  = 0o755
	FileMode = 0o644
)
