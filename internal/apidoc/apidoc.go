// Package apidoc embeds the OpenAPI description of the HTTP API.
package apidoc

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// YAML returns the raw embedded document.
func YAML() []byte {
	return slices.Clone(document)
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	return doc, nil
}

// Operations lists "METHOD path" for every documented operation.
func Operations(doc *openapi3.T) []string {
	var ops []string
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			ops = append(ops, method+" "+path)
		}
	}
	slices.Sort(ops)
	return ops
}

// Enum returns the string enum of a named component schema.
func Enum(doc *openapi3.T, schema string) ([]string, error) {
	ref, ok := doc.Components.Schemas[schema]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("schema %q not found", schema)
	}

	values := make([]string, 0, len(ref.Value.Enum))
	for _, v := range ref.Value.Enum {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("schema %q has non-string enum value %v", schema, v)
		}
		values = append(values, s)
	}
	return values, nil
}
