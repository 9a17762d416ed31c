package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, []byte(embeddedSchema))
}

func verify(cfg *Config, schemaData []byte) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	var errs []string
	checkObject("", configMap, resolve(&schema, &schema), &schema, &errs)
	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// resolve follows a local "#/$defs/Name" reference
func resolve(root, s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil || s.Ref == "" {
		return s
	}
	name := strings.TrimPrefix(s.Ref, "#/$defs/")
	if def, ok := root.Definitions[name]; ok {
		return def
	}
	return s
}

// checkObject reports keys unknown to the schema and values of the wrong JSON type
func checkObject(path string, obj map[string]any, s, root *jsonschema.Schema, errs *[]string) {
	if s == nil || s.Properties == nil {
		return
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := k
		if path != "" {
			name = path + "." + k
		}
		prop, ok := s.Properties.Get(k)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("%s is not defined in schema", name))
			continue
		}
		prop = resolve(root, prop)
		v := obj[k]
		if v == nil {
			continue
		}
		if !typeMatches(prop.Type, v) {
			*errs = append(*errs, fmt.Sprintf("%s should be %s", name, prop.Type))
			continue
		}
		if sub, ok := v.(map[string]any); ok {
			checkObject(name, sub, prop, root, errs)
		}
		if n, ok := v.(float64); ok && prop.Minimum != "" {
			var minimum float64
			if err := json.Unmarshal([]byte(prop.Minimum), &minimum); err == nil && n < minimum {
				*errs = append(*errs, fmt.Sprintf("%s should be >= %v", name, minimum))
			}
		}
	}
}

func typeMatches(schemaType string, v any) bool {
	switch v.(type) {
	case string:
		return schemaType == "" || schemaType == "string"
	case float64:
		return schemaType == "" || schemaType == "integer" || schemaType == "number"
	case bool:
		return schemaType == "" || schemaType == "boolean"
	case []any:
		return schemaType == "" || schemaType == "array"
	case map[string]any:
		return schemaType == "" || schemaType == "object"
	}
	return true
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Wiki.APIURL == "" {
		return fmt.Errorf("wiki.api_url is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
