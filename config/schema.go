package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/c360/semstreams-opcua/errors"
)

//go:embed settings.schema.json
var settingsSchemaJSON []byte

var (
	settingsSchemaOnce sync.Once
	settingsSchema     *gojsonschema.Schema
	settingsSchemaErr  error
)

// SettingsSchema returns the JSON schema recognized settings files follow.
func SettingsSchema() []byte {
	return settingsSchemaJSON
}

func compiledSchema() (*gojsonschema.Schema, error) {
	settingsSchemaOnce.Do(func() {
		settingsSchema, settingsSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(settingsSchemaJSON))
	})
	return settingsSchema, settingsSchemaErr
}

// validateSchema checks a decoded YAML document against the settings schema.
// Unknown options and wrongly typed values are reported as a *ValidationError.
func validateSchema(doc *yaml.Node) error {
	schema, err := compiledSchema()
	if err != nil {
		return errors.WrapFatal(err, "Loader", "validateSchema", "compile settings schema")
	}

	var raw any
	if err := doc.Decode(&raw); err != nil {
		return errors.WrapInvalid(err, "Loader", "validateSchema", "decode YAML document")
	}
	if raw == nil {
		raw = map[string]any{}
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			"Loader", "validateSchema", "convert YAML document to JSON")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.WrapInvalid(err, "Loader", "validateSchema", "validate against schema")
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return errors.WrapInvalid(&ValidationError{Problems: problems}, "Loader", "validateSchema", "validate against schema")
}
