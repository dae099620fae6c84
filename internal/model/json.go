package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// tokenBase is the wire form of the fields every token carries.
type tokenBase struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	Type        Type      `json:"type"`
	Category    Category  `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var baseKeys = map[string]bool{
	"id": true, "name": true, "value": true, "type": true, "category": true,
	"description": true, "createdAt": true, "updatedAt": true,
}

// MarshalJSON writes the base fields followed by the variant fields in one
// flat object.
func (t Token) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(tokenBase{
		ID:          t.ID,
		Name:        t.Name,
		Value:       t.Value,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	if t.Attrs == nil {
		return base, nil
	}
	extra, err := json.Marshal(t.Attrs)
	if err != nil {
		return nil, fmt.Errorf("marshal %s attrs: %w", t.Type, err)
	}
	if bytes.Equal(extra, []byte("{}")) {
		return base, nil
	}
	// splice: {base...} + {extra...} -> {base...,extra...}
	out := make([]byte, 0, len(base)+len(extra))
	out = append(out, base[:len(base)-1]...)
	out = append(out, ',')
	out = append(out, extra[1:]...)
	return out, nil
}

// UnmarshalJSON reads a flat token object. Legacy numeric ids are kept as
// their decimal text and the "border-radius" type is normalised.
func (t *Token) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeID(raw["id"])
	if err != nil {
		return err
	}

	var base struct {
		Name        string     `json:"name"`
		Value       string     `json:"value"`
		Type        string     `json:"type"`
		Category    Category   `json:"category"`
		Description string     `json:"description"`
		CreatedAt   *time.Time `json:"createdAt"`
		UpdatedAt   *time.Time `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}

	typ, _ := ParseType(base.Type)
	*t = Token{
		ID:          id,
		Name:        base.Name,
		Value:       base.Value,
		Type:        typ,
		Category:    base.Category,
		Description: base.Description,
	}
	if base.CreatedAt != nil {
		t.CreatedAt = *base.CreatedAt
	}
	if base.UpdatedAt != nil {
		t.UpdatedAt = *base.UpdatedAt
	}

	hasExtra := false
	for k := range raw {
		if !baseKeys[k] {
			hasExtra = true
			break
		}
	}
	if !hasExtra {
		return nil
	}
	attrs := newAttrs(typ)
	if attrs == nil {
		return nil
	}
	if err := json.Unmarshal(data, attrs); err != nil {
		return fmt.Errorf("decode %s attrs: %w", typ, err)
	}
	t.Attrs = attrs
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("token id: %w", err)
	}
	return n.String(), nil
}
