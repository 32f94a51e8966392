package verify

import (
	"bytes"
	_ "embed"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed plugin.schema.json
var manifestSchema []byte

const manifestSchemaURL = "plugin.schema.json"

func compileManifestSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(manifestSchemaURL, bytes.NewReader(manifestSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(manifestSchemaURL)
}

// schemaMessages flattens a validation error into its leaf messages.
func schemaMessages(err *jsonschema.ValidationError) []string {
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "/"
			}
			out = append(out, location+": "+strings.TrimSpace(node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return out
}
