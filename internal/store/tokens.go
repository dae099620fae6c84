package store

import (
	"context"
	"fmt"

	"github.com/rcliao/token-studio/internal/log"
	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/naming"
)

// Add creates a token with a fresh id and timestamps and appends it. The
// token is not validated. A persistence error is returned alongside the
// token, which stays in memory.
func (s *Store) Add(ctx context.Context, p AddParams) (model.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	name := p.Name
	if name == "" {
		name = naming.Generate(p.Category, p.Type, p.Value)
	}

	tok := model.Token{
		ID:          s.newID(),
		Name:        name,
		Value:       p.Value,
		Type:        p.Type,
		Category:    p.Category,
		Description: p.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Attrs:       model.CloneAttrs(p.Attrs),
	}
	s.tokens = append(s.tokens, tok)
	s.logger.Debug(log.CatStore, "token added", "id", tok.ID, "name", tok.Name)

	return tok.Clone(), s.persist(ctx)
}

// Update merges the patch into the token with the given id and bumps its
// UpdatedAt. Copies held by groups are refreshed. An unknown id is a no-op
// and reports false.
func (s *Store) Update(ctx context.Context, id string, p TokenPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	tok := &s.tokens[i]
	if p.Name != nil {
		tok.Name = *p.Name
	}
	if p.Value != nil {
		tok.Value = *p.Value
	}
	if p.Type != nil {
		tok.Type = *p.Type
	}
	if p.Category != nil {
		tok.Category = *p.Category
	}
	if p.Description != nil {
		tok.Description = *p.Description
	}
	if p.Attrs != nil {
		tok.Attrs = model.CloneAttrs(p.Attrs)
	}
	if tok.Attrs != nil && tok.Attrs.TokenType() != tok.Type {
		tok.Attrs = nil
	}
	tok.UpdatedAt = s.timestamp()

	for gi := range s.groups {
		for ti, member := range s.groups[gi].Tokens {
			if member.ID == id {
				s.groups[gi].Tokens[ti] = tok.Clone()
			}
		}
	}
	s.logger.Debug(log.CatStore, "token updated", "id", id)

	return true, s.persist(ctx)
}

// Delete removes the token from the list and from every group and clears
// the selection if it pointed at it.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = without(s.tokens, id)
	for gi := range s.groups {
		s.groups[gi].Tokens = without(s.groups[gi].Tokens, id)
	}
	if s.selected == id {
		s.selected = ""
	}
	s.logger.Debug(log.CatStore, "token deleted", "id", id)

	return s.persist(ctx)
}

// Select marks the token as the one being edited. An empty or unknown id
// clears the selection.
func (s *Store) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		id = ""
	}
	s.selected = id
	return s.persist(ctx)
}

// Selected returns the selected token, if any.
func (s *Store) Selected() (model.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(s.selected); i >= 0 {
		return s.tokens[i].Clone(), true
	}
	return model.Token{}, false
}

// Import appends tokens verbatim: no dedup, no validation, no grouping.
func (s *Store) Import(ctx context.Context, tokens []model.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tokens {
		s.tokens = append(s.tokens, t.Clone())
	}
	s.logger.Info(log.CatStore, "tokens imported", "count", len(tokens))

	return s.persist(ctx)
}

// ClearAll resets tokens, groups and selection.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = nil
	s.groups = nil
	s.selected = ""
	s.logger.Info(log.CatStore, "all tokens cleared")

	return s.persist(ctx)
}

// EnsureUniqueName returns ErrDuplicateName when a token other than
// exceptID already uses name.
func (s *Store) EnsureUniqueName(name, exceptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tokens {
		if t.Name == name && t.ID != exceptID {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	return nil
}

func without(tokens []model.Token, id string) []model.Token {
	out := tokens[:0]
	for _, t := range tokens {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
