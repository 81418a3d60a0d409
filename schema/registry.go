package schema

import (
	"sync"

	"github.com/kingler-db/kingler-go/runtime/types"
)

// Registry is a process-wide, read-mostly cache of derived table schemas,
// keyed by table name. Derivation is idempotent, so a race between two
// first-seen derivations wastes work but never corrupts the cache. A failed
// derivation leaves the registry untouched.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*TableSchema
	hits    int64
	misses  int64
}

// Stats reports registry cache statistics.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// NewRegistry creates an empty schema registry. There is no teardown;
// process exit reclaims it.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*TableSchema)}
}

// Lookup returns the cached schema for a table, or false when the table has
// not been derived yet.
func (r *Registry) Lookup(table string) (*TableSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[table]
	return s, ok
}

// Derive returns the cached schema for the record's table, building and
// caching it on first sight.
func (r *Registry) Derive(rec types.Record) (*TableSchema, error) {
	table := rec.TableName()

	r.mu.RLock()
	s, ok := r.schemas[table]
	r.mu.RUnlock()
	if ok {
		r.mu.Lock()
		r.hits++
		r.mu.Unlock()
		return s, nil
	}

	built, err := Build(rec)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses++
	// Another caller may have raced the derivation; both results are
	// identical, keep the first.
	if cached, ok := r.schemas[table]; ok {
		return cached, nil
	}
	r.schemas[table] = built
	return built, nil
}

// GetStats returns a snapshot of the registry statistics.
func (r *Registry) GetStats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{Hits: r.hits, Misses: r.misses, Size: len(r.schemas)}
}
