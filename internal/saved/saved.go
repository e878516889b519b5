package saved

import (
	"encoding/json"

	"github.com/matheuskafuri/aidash/internal/logging"
)

// StorageKey is the single key the saved set is persisted under.
const StorageKey = "aidash_saved_articles"

// Storage is the persistence the store writes through to. kv.Store and
// kv.Memory both satisfy it.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// deleter is implemented by storages that can drop a key outright.
type deleter interface {
	Delete(key string) error
}

// Store is the set of article ids the user has saved. Ids are kept in the
// order they were saved, which is also the order they are serialized in.
type Store struct {
	storage Storage
	order   []string
	members map[string]struct{}
}

// Load restores the saved set from storage. It never fails: a missing key,
// a read error or an unparsable value all yield an empty set.
func Load(storage Storage) *Store {
	s := &Store{storage: storage, members: make(map[string]struct{})}

	raw, ok, err := storage.Get(StorageKey)
	if err != nil {
		logging.Warn("reading saved articles", "err", err)
		return s
	}
	if !ok {
		return s
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logging.Warn("saved articles unreadable, starting empty", "err", err)
		return s
	}
	for _, id := range ids {
		s.add(id)
	}
	logging.Debug("loaded saved articles", "count", len(s.order))
	return s
}

func (s *Store) Has(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Toggle flips membership of id, persists the new set and returns whether id
// is now saved. Persistence failures are logged and otherwise ignored; the
// in-memory set stays authoritative for the session.
func (s *Store) Toggle(id string) bool {
	now := !s.Has(id)
	if now {
		s.add(id)
		logging.Info("saved article", "id", id)
	} else {
		s.remove(id)
		logging.Info("removed saved article", "id", id)
	}
	s.persist()
	return now
}

func (s *Store) Size() int {
	return len(s.order)
}

// IDs returns a copy of the saved ids in save order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Clear empties the set. The key is removed when the storage supports it,
// otherwise the empty list is persisted.
func (s *Store) Clear() {
	s.order = nil
	s.members = make(map[string]struct{})
	if d, ok := s.storage.(deleter); ok {
		if err := d.Delete(StorageKey); err != nil {
			logging.Warn("clearing saved articles", "err", err)
		}
		return
	}
	s.persist()
}

func (s *Store) add(id string) {
	if s.Has(id) {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Store) remove(id string) {
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *Store) persist() {
	ids := s.order
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		logging.Error("encoding saved articles", "err", err)
		return
	}
	if err := s.storage.Set(StorageKey, string(data)); err != nil {
		logging.Warn("persisting saved articles", "err", err)
	}
}
