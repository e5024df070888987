package output

import (
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the document as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc.structured())
}
