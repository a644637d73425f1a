package mailchimp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildMemberJSONSchema returns the JSON-Schema (draft 2020-12 subset) the
// upsert payload is validated against before it leaves the process. A
// malformed record is a bug in the assembler, and catching it here keeps
// garbage out of the list.
func buildMemberJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"email_address": map[string]any{
				"type":    "string",
				"pattern": `^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`,
			},
			"status_if_new": map[string]any{"type": "string", "enum": []string{"subscribed", "pending"}},
			"status":        map[string]any{"type": "string", "enum": []string{"subscribed", "pending"}},
			"merge_fields": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"FNAME":   map[string]any{"type": "string"},
					"LNAME":   map[string]any{"type": "string"},
					"COMPANY": map[string]any{"type": "string"},
					"PHONE":   map[string]any{"type": "string", "pattern": `^$|^\d{7,15}$`},
					"WEBSITE": map[string]any{"type": "string"},
				},
			},
		},
		"required": []string{"email_address", "status_if_new", "status", "merge_fields"},
	}
}

var (
	memberSchemaOnce sync.Once
	memberSchema     *jsonschema.Schema
	memberSchemaErr  error
)

func compiledMemberSchema() (*jsonschema.Schema, error) {
	memberSchemaOnce.Do(func() {
		b, err := json.Marshal(buildMemberJSONSchema())
		if err != nil {
			memberSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("member.json", bytes.NewReader(b)); err != nil {
			memberSchemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		memberSchema, memberSchemaErr = compiler.Compile("member.json")
	})
	return memberSchema, memberSchemaErr
}

func validateMemberPayload(p memberPayload) error {
	schema, err := compiledMemberSchema()
	if err != nil {
		return err
	}
	bs, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	var v any
	if err := json.Unmarshal(bs, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
