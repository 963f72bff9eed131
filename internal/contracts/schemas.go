package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Names of the request payload schemas.
const (
	SchemaPropertyCreate = "property-create"
	SchemaPropertyUpdate = "property-update"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	for _, name := range []string{SchemaPropertyCreate, SchemaPropertyUpdate} {
		path := fmt.Sprintf("schemas/%s.json", name)
		file, err := schemaFS.Open(path)
		if err != nil {
			log.Fatalf("failed to open schema %s: %v", path, err)
		}
		if err := compiler.AddResource(name+".json", file); err != nil {
			log.Fatalf("failed to add schema resource %s: %v", path, err)
		}
		schema, err := compiler.Compile(name + ".json")
		if err != nil {
			log.Fatalf("failed to compile schema %s: %v", path, err)
		}
		compiledSchemas[name] = schema
	}
}

// ValidatePayload checks a request body against a named schema.
func ValidatePayload(schemaName string, body []byte) error {
	schema, ok := compiledSchemas[schemaName]
	if !ok {
		return fmt.Errorf("schema '%s' not found", schemaName)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("request body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}
