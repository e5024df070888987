package output

import (
	"encoding/json"
)

// JSONFormatter serializes the document as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc.structured(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
