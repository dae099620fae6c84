package store

import (
	"context"

	"github.com/rcliao/token-studio/internal/log"
	"github.com/rcliao/token-studio/internal/model"
)

// AddGroup creates an empty, expanded group.
func (s *Store) AddGroup(ctx context.Context, name string, category model.Category) (model.TokenGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := model.TokenGroup{
		ID:       s.newID(),
		Name:     name,
		Category: category,
		Tokens:   []model.Token{},
	}
	s.groups = append(s.groups, g)
	s.logger.Debug(log.CatStore, "group added", "id", g.ID, "name", name)

	return g.Clone(), s.persist(ctx)
}

// UpdateGroup merges the patch into the group. An unknown id is a no-op
// and reports false.
func (s *Store) UpdateGroup(ctx context.Context, id string, p GroupPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.groupIndex(id)
	if i < 0 {
		return false, nil
	}
	g := &s.groups[i]
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Collapsed != nil {
		g.Collapsed = *p.Collapsed
	}

	return true, s.persist(ctx)
}

// DeleteGroup removes the group. Its tokens stay in the master list and
// become ungrouped.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.groups[:0]
	for _, g := range s.groups {
		if g.ID != id {
			out = append(out, g)
		}
	}
	s.groups = out
	s.logger.Debug(log.CatStore, "group deleted", "id", id)

	return s.persist(ctx)
}

// MoveTokenToGroup removes the token from every group and appends it to
// the target. An unknown token id is a silent no-op. An unknown group id
// leaves the token ungrouped.
func (s *Store) MoveTokenToGroup(ctx context.Context, tokenID, groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(tokenID)
	if i < 0 {
		return nil
	}
	tok := s.tokens[i]

	for gi := range s.groups {
		s.groups[gi].Tokens = without(s.groups[gi].Tokens, tokenID)
		if s.groups[gi].ID == groupID {
			s.groups[gi].Tokens = append(s.groups[gi].Tokens, tok.Clone())
		}
	}
	s.logger.Debug(log.CatStore, "token moved", "token", tokenID, "group", groupID)

	return s.persist(ctx)
}
