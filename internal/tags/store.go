// Package tags owns the user-editable tag vocabularies for text and creative content.
//
// Recycled and flexible content use the fixed lists in package content.
// A rename or removal here does not touch tags already stored on blocks.
package tags

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/db"
)

// Namespace is the KV namespace holding the vocabularies.
const Namespace = "tags"

// Category selects an editable vocabulary.
type Category string

const (
	Text     Category = "text"
	Creative Category = "creative"
)

// ErrInvalidCategory is returned by ParseCategory for names other than text and creative.
var ErrInvalidCategory = errors.New("tag category must be 'text' or 'creative'")

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Text:
		return Text, nil
	case Creative:
		return Creative, nil
	default:
		return "", ErrInvalidCategory
	}
}

// CategoryFor returns the editable category of a content type.
func CategoryFor(t content.Type) (Category, bool) {
	switch t {
	case content.TypeText:
		return Text, true
	case content.TypeCreative:
		return Creative, true
	default:
		return "", false
	}
}

// persistedState is the JSON shape stored under Namespace.
type persistedState struct {
	TextTags     []string `json:"textTags"`
	CreativeTags []string `json:"creativeTags"`
}

// Store holds the two vocabularies.
type Store struct {
	mu    sync.RWMutex
	vocab map[Category][]string

	kv  db.KV
	log *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New returns a store with the built-in default vocabularies.
// A nil kv keeps the vocabularies in memory only.
func New(kv db.KV, opts ...Option) *Store {
	s := &Store{
		vocab: defaults(),
		kv:    kv,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaults() map[Category][]string {
	return map[Category][]string{
		Text:     content.TagsForType(content.TypeText),
		Creative: content.TagsForType(content.TypeCreative),
	}
}

// Open returns a store loaded from kv, falling back to defaults when nothing
// is stored or the payload is unreadable.
func Open(ctx context.Context, kv db.KV, opts ...Option) (*Store, error) {
	s := New(kv, opts...)

	data, err := kv.Get(ctx, Namespace)
	if errors.Is(err, db.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading tags: %w", err)
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Error("discarding unreadable tag vocabularies", "error", err)
		return s, nil
	}
	if state.TextTags != nil {
		s.vocab[Text] = dedupe(state.TextTags)
	}
	if state.CreativeTags != nil {
		s.vocab[Creative] = dedupe(state.CreativeTags)
	}
	return s, nil
}

// AddTag appends value to the category's vocabulary.
// Blank values and values already present are ignored.
func (s *Store) AddTag(cat Category, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.vocab[cat]
	if !ok || indexOf(list, value) >= 0 {
		return
	}
	s.vocab[cat] = append(list, value)
	s.commit("added tag", "category", cat, "tag", value)
}

// RemoveTag removes value from the category's vocabulary, if present.
func (s *Store) RemoveTag(cat Category, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.vocab[cat]
	if !ok {
		return
	}
	i := indexOf(list, value)
	if i < 0 {
		return
	}
	s.vocab[cat] = append(list[:i:i], list[i+1:]...)
	s.commit("removed tag", "category", cat, "tag", value)
}

// RenameTag replaces oldValue with newValue in place.
// Blank new values are ignored, as is a rename onto another existing tag.
func (s *Store) RenameTag(cat Category, oldValue, newValue string) {
	newValue = strings.TrimSpace(newValue)
	if newValue == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.vocab[cat]
	if !ok {
		return
	}
	if newValue != oldValue && indexOf(list, newValue) >= 0 {
		return
	}
	i := indexOf(list, oldValue)
	if i < 0 || list[i] == newValue {
		return
	}
	list[i] = newValue
	s.commit("renamed tag", "category", cat, "from", oldValue, "to", newValue)
}

// TagsForType returns a copy of the category's vocabulary, in order.
func (s *Store) TagsForType(cat Category) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.vocab[cat]...)
}

// TagsForContent returns the tags offered for a content type: the editable
// vocabulary for text and creative, the built-in list otherwise.
func (s *Store) TagsForContent(t content.Type) []string {
	if cat, ok := CategoryFor(t); ok {
		return s.TagsForType(cat)
	}
	return content.TagsForType(t)
}

// Reset restores the built-in vocabularies.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vocab = defaults()
	s.commit("reset tags")
}

// commit logs and writes through. Callers hold s.mu.
func (s *Store) commit(op string, attrs ...any) {
	s.log.Debug(op, attrs...)
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(persistedState{
		TextTags:     s.vocab[Text],
		CreativeTags: s.vocab[Creative],
	})
	if err != nil {
		s.log.Error("encoding tags", "error", err)
		return
	}
	if err := s.kv.Put(context.Background(), Namespace, data); err != nil {
		s.log.Error("persisting tags", "error", err)
	}
}

// dedupe drops blank and repeated entries, keeping the first occurrence.
func dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if strings.TrimSpace(v) == "" || indexOf(out, v) >= 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}
