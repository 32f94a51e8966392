package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/regression-io/claude-config-plugins/internal/consts"
)

// Descriptor is the optional template.json manifest of a template.
type Descriptor struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Includes    []string `json:"includes"`
}

// LoadDescriptor reads template.json from dir. A missing file yields the
// default descriptor named after plugin; a malformed one is an error.
func LoadDescriptor(dir, plugin string) (*Descriptor, error) {
	path := filepath.Join(dir, consts.TemplateDescriptorFile)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Descriptor{Name: plugin, Includes: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read template descriptor: %w", err)
	}

	var desc Descriptor
	if err := sonic.Unmarshal(raw, &desc); err != nil {
		return nil, fmt.Errorf("parse template descriptor %s: %w", path, err)
	}
	return &desc, nil
}
