package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter prints a titled, column-aligned key/value listing.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if doc.Title != "" {
		fmt.Fprintln(&buf, doc.Title)
		fmt.Fprintln(&buf, strings.Repeat("=", len(doc.Title)))
	}
	width := 0
	for _, e := range doc.Entries {
		if len(e.Key)+1 > width {
			width = len(e.Key) + 1
		}
	}
	for _, e := range doc.Entries {
		fmt.Fprintf(&buf, "%-*s  %s\n", width, e.Key+":", e.Value)
	}
	return buf.Bytes(), nil
}
