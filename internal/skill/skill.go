package skill

type Skill struct {
	Name        string
	Description string
	Metadata    map[string]interface{}
	Content     string
	Path        string
	// Dir is the name of the directory holding SKILL.md.
	Dir string
}

// LoadIssue records a SKILL.md that could not be loaded.
type LoadIssue struct {
	Path string
	Err  error
}
