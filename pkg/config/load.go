package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// runConfigSchema constrains the optional JSON run-config file: every field
// is optional (Default() fills the rest), but types and ranges are checked
// before unmarshalling into Config so a malformed file fails fast with a
// field-level message instead of a zero-valued field silently passing
// Validate().
const runConfigSchema = `{
  "type": "object",
  "properties": {
    "dagsPath": {"type": "string"},
    "outputPath": {"type": "string"},
    "k": {"type": "integer", "minimum": 1},
    "resolutionThreshold": {"type": "integer", "minimum": 0},
    "resolutionFrequency": {"type": "boolean"},
    "solutionPoolSize": {"type": "integer", "minimum": 0},
    "cores": {"type": "integer", "minimum": 0},
    "parallelize": {"type": "boolean"},
    "verbose": {"type": "boolean"},
    "drawDots": {"type": "boolean"}
  },
  "additionalProperties": false
}`

type runConfigFile struct {
	DAGsPath            *string `json:"dagsPath"`
	OutputPath          *string `json:"outputPath"`
	K                   *int    `json:"k"`
	ResolutionThreshold *int    `json:"resolutionThreshold"`
	ResolutionFrequency *bool   `json:"resolutionFrequency"`
	SolutionPoolSize    *int    `json:"solutionPoolSize"`
	Cores               *int    `json:"cores"`
	Parallelize         *bool   `json:"parallelize"`
	Verbose             *bool   `json:"verbose"`
	DrawDots            *bool   `json:"drawDots"`
}

// LoadFile reads a JSON run-config file at path, validates it against
// runConfigSchema, and overlays any fields it sets onto base. base is not
// mutated; LoadFile returns a clone. Fields absent from the file keep
// base's value, so callers typically pass config.Default() as base and
// override only what the CLI's flags also didn't set.
func LoadFile(path string, base *Config) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParseFailed, path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(runConfigSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParseFailed, path, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigSchemaInvalid, path, result.Errors()[0].String())
	}

	var parsed runConfigFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParseFailed, path, err)
	}

	cfg := base.Clone()
	if parsed.DAGsPath != nil {
		cfg.DAGsPath = *parsed.DAGsPath
	}
	if parsed.OutputPath != nil {
		cfg.OutputPath = *parsed.OutputPath
	}
	if parsed.K != nil {
		cfg.K = *parsed.K
	}
	if parsed.ResolutionThreshold != nil {
		cfg.ResolutionThreshold = *parsed.ResolutionThreshold
	}
	if parsed.ResolutionFrequency != nil {
		cfg.ResolutionFrequency = *parsed.ResolutionFrequency
	}
	if parsed.SolutionPoolSize != nil {
		cfg.SolutionPoolSize = *parsed.SolutionPoolSize
	}
	if parsed.Cores != nil {
		cfg.Cores = *parsed.Cores
	}
	if parsed.Parallelize != nil {
		cfg.Parallelize = *parsed.Parallelize
	}
	if parsed.Verbose != nil {
		cfg.Verbose = *parsed.Verbose
	}
	if parsed.DrawDots != nil {
		cfg.DrawDots = *parsed.DrawDots
	}
	return cfg, nil
}
