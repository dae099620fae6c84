package store

import (
	"context"
	"strings"

	"github.com/rcliao/token-studio/internal/model"
)

// Tokens returns a copy of every token in insertion order.
func (s *Store) Tokens() []model.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.tokens)
}

// Token looks a token up by id.
func (s *Store) Token(id string) (model.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tokens[i].Clone(), true
	}
	return model.Token{}, false
}

// FindByName returns the first token with the exact name.
func (s *Store) FindByName(name string) (model.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tokens {
		if t.Name == name {
			return t.Clone(), true
		}
	}
	return model.Token{}, false
}

// Groups returns a copy of every group.
func (s *Store) Groups() []model.TokenGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.TokenGroup, len(s.groups))
	for i, g := range s.groups {
		out[i] = g.Clone()
	}
	return out
}

// Group looks a group up by id.
func (s *Store) Group(id string) (model.TokenGroup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.groupIndex(id); i >= 0 {
		return s.groups[i].Clone(), true
	}
	return model.TokenGroup{}, false
}

// ByCategory returns the tokens in the category.
func (s *Store) ByCategory(c model.Category) []model.Token {
	return s.List(ListParams{Category: c})
}

// ByType returns the tokens of the type.
func (s *Store) ByType(t model.Type) []model.Token {
	return s.List(ListParams{Type: t})
}

// Ungrouped returns the tokens that no group holds.
func (s *Store) Ungrouped() []model.Token {
	return s.List(ListParams{Ungrouped: true})
}

// Search returns tokens whose name, value, type, category or description
// contains query, ignoring case. An empty query matches everything.
func (s *Store) Search(query string) []model.Token {
	return s.List(ListParams{Query: query})
}

// List returns the tokens matching every filter in p.
func (s *Store) List(p ListParams) []model.Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	source := s.tokens
	if p.GroupID != "" {
		i := s.groupIndex(p.GroupID)
		if i < 0 {
			return []model.Token{}
		}
		source = s.groups[i].Tokens
	}

	var grouped map[string]bool
	if p.Ungrouped {
		grouped = s.groupedIDs()
	}
	q := strings.ToLower(strings.TrimSpace(p.Query))

	out := []model.Token{}
	for _, t := range source {
		if p.Category != "" && t.Category != p.Category {
			continue
		}
		if p.Type != "" && t.Type != p.Type {
			continue
		}
		if grouped != nil && grouped[t.ID] {
			continue
		}
		if q != "" && !matches(t, q) {
			continue
		}
		out = append(out, t.Clone())
		if p.Limit > 0 && len(out) >= p.Limit {
			break
		}
	}
	return out
}

func (s *Store) groupedIDs() map[string]bool {
	ids := map[string]bool{}
	for _, g := range s.groups {
		for _, t := range g.Tokens {
			ids[t.ID] = true
		}
	}
	return ids
}

func matches(t model.Token, q string) bool {
	for _, field := range []string{t.Name, t.Value, string(t.Type), string(t.Category), t.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Stats holds collection statistics.
type Stats struct {
	TotalTokens  int                    `json:"total_tokens"`
	TotalGroups  int                    `json:"total_groups"`
	Ungrouped    int                    `json:"ungrouped"`
	ByType       map[model.Type]int     `json:"by_type"`
	ByCategory   map[model.Category]int `json:"by_category"`
	StorageBytes int64                  `json:"storage_bytes"`
	Location     string                 `json:"location,omitempty"`
	Selected     string                 `json:"selected,omitempty"`
}

// Stats returns collection statistics and the bytes held in storage.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	s.mu.Lock()
	st := &Stats{
		TotalTokens: len(s.tokens),
		TotalGroups: len(s.groups),
		ByType:      map[model.Type]int{},
		ByCategory:  map[model.Category]int{},
		Selected:    s.selected,
	}
	grouped := s.groupedIDs()
	for _, t := range s.tokens {
		st.ByType[t.Type]++
		st.ByCategory[t.Category]++
		if !grouped[t.ID] {
			st.Ungrouped++
		}
	}
	s.mu.Unlock()

	n, err := s.backend.Usage(ctx)
	if err != nil {
		return st, err
	}
	st.StorageBytes = n
	if p, ok := s.backend.(interface{ Path() string }); ok {
		st.Location = p.Path()
	}
	return st, nil
}

func cloneAll(tokens []model.Token) []model.Token {
	out := make([]model.Token, len(tokens))
	for i, t := range tokens {
		out[i] = t.Clone()
	}
	return out
}
