package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Entry is one key/value line of a Document.
type Entry struct {
	Key   string
	Value string
}

// Document is a command result ready for formatting. Console output prints
// Title and Entries; structured formatters encode Payload, or the entries as
// a mapping when Payload is nil.
type Document struct {
	Title   string
	Entries []Entry
	Payload any
}

// NewDocument creates an empty document.
func NewDocument(title string) *Document {
	return &Document{Title: title}
}

// Add appends an entry.
func (d *Document) Add(key, value string) *Document {
	d.Entries = append(d.Entries, Entry{Key: key, Value: value})
	return d
}

// AddMap appends every pair of m in key order.
func (d *Document) AddMap(m map[string]string) *Document {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.Add(k, m[k])
	}
	return d
}

// WithPayload sets the value structured formatters encode.
func (d *Document) WithPayload(v any) *Document {
	d.Payload = v
	return d
}

func (d *Document) structured() any {
	if d.Payload != nil {
		return d.Payload
	}
	m := make(map[string]string, len(d.Entries))
	for _, e := range d.Entries {
		m[e.Key] = e.Value
	}
	return m
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(doc *Document) ([]byte, error)
	// Name returns a short identifier used on the command line.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"json-pretty": "json",
	"yml":         "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render formats doc with the named formatter and writes it to w.
func Render(w io.Writer, format string, doc *Document) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(doc)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
