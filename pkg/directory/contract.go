package directory

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed contract.yaml
var contractYAML []byte

// Contract parses and validates the embedded OpenAPI description of the
// directory collaborator. The client consults it for the default base
// URL and the set of supported query actions.
func Contract(ctx context.Context) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(contractYAML)
	if err != nil {
		return nil, fmt.Errorf("directory: load contract: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("directory: validate contract: %w", err)
	}
	return doc, nil
}

// contractBaseURL returns the first server entry of the contract.
func contractBaseURL(doc *openapi3.T) string {
	if doc == nil || len(doc.Servers) == 0 {
		return ""
	}
	return doc.Servers[0].URL
}

// contractActions extracts the allowed values of the `action` query
// parameter from the contract's GET operation.
func contractActions(doc *openapi3.T) map[string]bool {
	actions := make(map[string]bool)
	if doc == nil || doc.Paths == nil {
		return actions
	}
	item := doc.Paths.Value("/")
	if item == nil || item.Get == nil {
		return actions
	}
	for _, ref := range item.Get.Parameters {
		if ref == nil || ref.Value == nil || ref.Value.Name != "action" {
			continue
		}
		schema := ref.Value.Schema
		if schema == nil || schema.Value == nil {
			continue
		}
		for _, v := range schema.Value.Enum {
			if s, ok := v.(string); ok {
				actions[s] = true
			}
		}
	}
	return actions
}
