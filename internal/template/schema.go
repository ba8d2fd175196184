package template

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// schemaFor maps structured artifact paths to the embedded schema that checks them.
var schemaFor = map[string]string{
	"package.json":  "package.schema.json",
	"tsconfig.json": "tsconfig.schema.json",
}

var (
	schemaOnce     sync.Once
	compiledSchema map[string]*jsonschema.Schema
	schemaErr      error
)

// loadSchemas compiles every embedded schema once.
func loadSchemas() (map[string]*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		compiled := make(map[string]*jsonschema.Schema, len(schemaFor))
		for _, name := range schemaFor {
			data, err := schemaFS.ReadFile("schemas/" + name)
			if err != nil {
				schemaErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				schemaErr = fmt.Errorf("unmarshal schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(name, doc); err != nil {
				schemaErr = fmt.Errorf("add schema %s: %w", name, err)
				return
			}
		}
		for _, name := range schemaFor {
			s, err := c.Compile(name)
			if err != nil {
				schemaErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
			compiled[name] = s
		}
		compiledSchema = compiled
	})
	return compiledSchema, schemaErr
}

// ValidateStructured checks every artifact that has a schema. Artifacts
// without one are ignored.
func ValidateStructured(set *ArtifactSet) error {
	schemas, err := loadSchemas()
	if err != nil {
		return err
	}
	for _, a := range set.All() {
		name, ok := schemaFor[a.Path]
		if !ok {
			continue
		}
		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(a.Content))
		if err != nil {
			return fmt.Errorf("%w: %s is not valid JSON: %v", ErrSchemaViolation, a.Path, err)
		}
		if err := schemas[name].Validate(inst); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrSchemaViolation, a.Path, strings.TrimSpace(err.Error()))
		}
	}
	return nil
}
