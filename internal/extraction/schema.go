package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns the canonical output contract as a JSON
// Schema (draft 2020-12 subset). Every string field is either empty or in
// its validated shape; consumers rely on this invariant.
func BuildInvoiceJSONSchema() map[string]any {
	emptyOr := func(pattern string) map[string]any {
		return map[string]any{"type": "string", "pattern": fmt.Sprintf(`^(%s)?$`, pattern)}
	}
	props := map[string]any{
		"invoiceNumber":      emptyOr(`\d{6,16}`),
		"invoiceDate":        emptyOr(`\d{4}-\d{2}-\d{2}`),
		"dueDate":            emptyOr(`\d{4}-\d{2}-\d{2}`),
		"amount":             emptyOr(`\d+(\.\d{1,2})?`),
		"provider":           map[string]any{"type": "string"},
		"period":             map[string]any{"type": "string"},
		"consumption":        map[string]any{"type": "string"},
		"invoiceType":        map[string]any{"type": "string", "enum": []string{"", "electricity", "water", "gas"}},
		"unit":               map[string]any{"type": "string", "enum": []string{"", "kwh", "m3"}},
		"accountNumber":      map[string]any{"type": "string"},
		"installationNumber": map[string]any{"type": "string"},
		"customerNumber":     map[string]any{"type": "string"},
		"averageConsumption": map[string]any{"type": "string"},
		"fullName":           map[string]any{"type": "string"},
		"address":            map[string]any{"type": "string"},
		"consumerGroup":      map[string]any{"type": "string"},
		"tableData": map[string]any{
			"type":  []string{"array", "null"},
			"items": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"tableHeaders": map[string]any{
			"type":  []string{"array", "null"},
			"items": map[string]any{"type": "string"},
		},
		"rawText": map[string]any{"type": "string"},
		"warning": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required": []string{
			"invoiceNumber", "invoiceDate", "dueDate", "amount",
			"invoiceType", "unit", "rawText",
		},
	}
}

// ValidateInvoiceJSON validates serialized invoice data against the
// canonical schema.
func ValidateInvoiceJSON(data []byte) error {
	b, err := json.Marshal(BuildInvoiceJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("invoice.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("invoice.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invoice does not match schema: %w", err)
	}
	return nil
}
