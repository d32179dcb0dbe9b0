package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the --output flag
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// OutputFormats lists the formats accepted by Output
var OutputFormats = []string{FormatText, FormatJSON, FormatYAML}

// Output prints data in the requested format. Text output is produced by
// the text callback so each command controls its human-readable layout.
func Output(format string, data interface{}, text func(w io.Writer) error) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		if text == nil {
			return fmt.Errorf("text output is not supported here")
		}
		return text(os.Stdout)
	case FormatJSON:
		return OutputJSON(data)
	case FormatYAML:
		return OutputYAML(data)
	default:
		return &ErrorWithSuggestion{
			Err:        fmt.Errorf("unknown output format: %s", format),
			Suggestion: fmt.Sprintf("Valid formats: %s", strings.Join(OutputFormats, ", ")),
		}
	}
}

// OutputJSON marshals the provided data as indented JSON and prints it to stdout.
// Returns an error if marshaling fails.
func OutputJSON(data interface{}) error {
	jsonData, err := MarshalJSON(data)
	if err != nil {
		return err
	}
	fmt.Println(string(jsonData))
	return nil
}

// OutputYAML marshals the provided data as YAML and prints it to stdout.
// Returns an error if marshaling fails.
func OutputYAML(data interface{}) error {
	yamlData, err := MarshalYAML(data)
	if err != nil {
		return err
	}
	fmt.Print(string(yamlData))
	return nil
}

// MarshalJSON marshals the provided data as indented JSON.
func MarshalJSON(data interface{}) ([]byte, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return jsonData, nil
}

// MarshalYAML marshals the provided data as YAML.
func MarshalYAML(data interface{}) ([]byte, error) {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return yamlData, nil
}
