// Package store holds the token and group collections, applies mutations to
// them and persists the full state after every change.
package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/token-studio/internal/log"
	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/storage"
)

// DefaultKey is the storage key the state record lives under.
const DefaultKey = "design-token-studio"

// ErrDuplicateName is returned by EnsureUniqueName when another token
// already uses the name.
var ErrDuplicateName = errors.New("token name already exists")

// Options configures a Store.
type Options struct {
	Storage storage.Storage
	Key     string      // defaults to DefaultKey
	Logger  *log.Logger // nil disables logging
	Now     func() time.Time
	NewID   func() string
}

// AddParams holds parameters for creating a token.
type AddParams struct {
	Name        string // generated from category, type and value when empty
	Value       string
	Type        model.Type
	Category    model.Category
	Description string
	Attrs       model.Attrs
}

// TokenPatch is a partial token update. Nil fields are left unchanged.
type TokenPatch struct {
	Name        *string
	Value       *string
	Type        *model.Type
	Category    *model.Category
	Description *string
	Attrs       model.Attrs
}

// GroupPatch is a partial group update. Nil fields are left unchanged.
type GroupPatch struct {
	Name      *string
	Category  *model.Category
	Collapsed *bool
}

// ListParams holds filters for listing tokens. Zero values match everything.
type ListParams struct {
	Category  model.Category
	Type      model.Type
	GroupID   string
	Ungrouped bool
	Query     string
	Limit     int
}

// Store is the in-memory token collection backed by a Storage record.
// It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	tokens   []model.Token
	groups   []model.TokenGroup
	selected string

	backend storage.Storage
	key     string
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
}

// New loads the state stored under the configured key. An absent key
// yields an empty store. A record that fails to decode is logged and
// replaced by an empty state.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Storage == nil {
		return nil, fmt.Errorf("store: storage is required")
	}
	s := &Store{
		backend: opts.Storage,
		key:     opts.Key,
		logger:  opts.Logger,
		now:     opts.Now,
		newID:   opts.NewID,
	}
	if s.key == "" {
		s.key = DefaultKey
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
		s.newID = func() string {
			return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
		}
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying storage.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tokens {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) groupIndex(id string) int {
	for i, g := range s.groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}
