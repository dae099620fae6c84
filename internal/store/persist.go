package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rcliao/token-studio/internal/log"
	"github.com/rcliao/token-studio/internal/model"
)

// SchemaVersion tags the persisted record.
const SchemaVersion = 1

// BackupKey is where a record that failed to load is kept.
func BackupKey(key string) string { return key + ".corrupt" }

type record struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

type persistedState struct {
	Tokens        []model.Token      `json:"tokens"`
	Groups        []model.TokenGroup `json:"groups"`
	SelectedToken *model.Token       `json:"selectedToken"`
}

func (s *Store) load(ctx context.Context) error {
	raw, ok, err := s.backend.GetItem(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if !ok {
		s.logger.Debug(log.CatStorage, "no stored state", "key", s.key)
		return nil
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Warn(log.CatStorage, "stored state is corrupt, starting empty", "key", s.key, "error", err)
		s.keepUnreadable(ctx, raw)
		return nil
	}
	if rec.Version != SchemaVersion {
		s.logger.Warn(log.CatStorage, "unknown state version, starting empty", "key", s.key, "version", rec.Version)
		s.keepUnreadable(ctx, raw)
		return nil
	}

	s.tokens = rec.State.Tokens
	s.groups = rec.State.Groups
	if rec.State.SelectedToken != nil && s.indexOf(rec.State.SelectedToken.ID) >= 0 {
		s.selected = rec.State.SelectedToken.ID
	}
	s.logger.Debug(log.CatStorage, "state loaded", "tokens", len(s.tokens), "groups", len(s.groups))
	return nil
}

// keepUnreadable copies a record that could not be loaded to BackupKey so
// the next persist does not destroy it.
func (s *Store) keepUnreadable(ctx context.Context, raw string) {
	backup := BackupKey(s.key)
	if err := s.backend.SetItem(ctx, backup, raw); err != nil {
		s.logger.ErrorErr(log.CatStorage, "could not back up unreadable state", err, "key", backup)
		return
	}
	s.logger.Warn(log.CatStorage, "unreadable state backed up", "key", backup, "bytes", len(raw))
}

// persist writes the full state. The caller holds s.mu.
func (s *Store) persist(ctx context.Context) error {
	rec := record{
		State: persistedState{
			Tokens: s.tokens,
			Groups: s.groups,
		},
		Version: SchemaVersion,
	}
	if rec.State.Tokens == nil {
		rec.State.Tokens = []model.Token{}
	}
	if rec.State.Groups == nil {
		rec.State.Groups = []model.TokenGroup{}
	}
	for i := range rec.State.Groups {
		if rec.State.Groups[i].Tokens == nil {
			rec.State.Groups[i].Tokens = []model.Token{}
		}
	}
	if i := s.indexOf(s.selected); i >= 0 {
		sel := s.tokens[i]
		rec.State.SelectedToken = &sel
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.backend.SetItem(ctx, s.key, string(b)); err != nil {
		s.logger.ErrorErr(log.CatStorage, "persist failed", err, "bytes", len(b))
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}
