package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rcliao/token-studio/internal/model"
)

// DocumentVersion tags export documents.
const DocumentVersion = "1.0.0"

// DocumentFileName is the download name of an export document.
const DocumentFileName = "design-tokens.json"

// ErrImportFormat is returned when an import file is not a document with a
// tokens array.
var ErrImportFormat = errors.New("invalid token file format")

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Metadata summarises a document's tokens.
type Metadata struct {
	TotalTokens  int      `json:"totalTokens"`
	Categories   []string `json:"categories"`
	LastModified string   `json:"lastModified"`
}

// Document is the token backup and import file.
type Document struct {
	Tokens     []model.Token `json:"tokens"`
	ExportedAt string        `json:"exportedAt"`
	Version    string        `json:"version"`
	Metadata   *Metadata     `json:"metadata,omitempty"`
}

// NewDocument wraps tokens for export. withMeta adds the metadata block.
func NewDocument(tokens []model.Token, now time.Time, withMeta bool) Document {
	if tokens == nil {
		tokens = []model.Token{}
	}
	doc := Document{
		Tokens:     tokens,
		ExportedAt: now.UTC().Format(isoMillis),
		Version:    DocumentVersion,
	}
	if withMeta {
		doc.Metadata = metadata(tokens, now)
	}
	return doc
}

func metadata(tokens []model.Token, now time.Time) *Metadata {
	m := &Metadata{TotalTokens: len(tokens), Categories: []string{}}
	seen := map[model.Category]bool{}
	var last time.Time
	for _, t := range tokens {
		if !seen[t.Category] {
			seen[t.Category] = true
			m.Categories = append(m.Categories, string(t.Category))
		}
		if t.UpdatedAt.After(last) {
			last = t.UpdatedAt
		}
	}
	if last.IsZero() {
		last = now
	}
	m.LastModified = last.UTC().Format(isoMillis)
	return m
}

// Encode writes the document as two-space indented JSON, or compact JSON
// when minify is set.
func (d Document) Encode(minify bool) (string, error) {
	return encode(d, minify)
}

// ParseImport reads an import file. It accepts any JSON object whose
// tokens field is an array and returns those tokens as written.
func ParseImport(r io.Reader) ([]model.Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: error reading token file: %v", ErrImportFormat, err)
	}
	list := bytes.TrimSpace(raw["tokens"])
	if len(list) == 0 || list[0] != '[' {
		return nil, fmt.Errorf("%w: tokens must be an array", ErrImportFormat)
	}

	var tokens []model.Token
	if err := json.Unmarshal(list, &tokens); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	if tokens == nil {
		tokens = []model.Token{}
	}
	return tokens, nil
}
