package scenario

// Store exposes scenario scripts to the responder.
type Store interface {
	List() []Script
	FindByName(name string) (Script, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Script
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied scripts.
func NewMemoryStore(items []Script) *MemoryStore {
	return &MemoryStore{items: append([]Script(nil), items...)}
}

// List returns the scripts in seed order.
func (s *MemoryStore) List() []Script {
	return append([]Script(nil), s.items...)
}

// FindByName looks up a script by scenario name.
func (s *MemoryStore) FindByName(name string) (Script, bool) {
	for _, item := range s.items {
		if item.Name == name {
			return item, true
		}
	}
	return Script{}, false
}
