package notes

import (
	"errors"
	"sync"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrInvalidID    = errors.New("invalid note ID")
)

// Catalog is the ordered, in-memory collection of notes.
// Newest submissions come first; seed notes keep their seed order.
type Catalog struct {
	mu     sync.RWMutex
	notes  []Note
	lastID int64
}

// NewCatalog creates a catalog holding seed in the given order
func NewCatalog(seed []Note) *Catalog {
	c := &Catalog{notes: make([]Note, len(seed))}
	copy(c.notes, seed)
	for _, n := range seed {
		if n.ID > c.lastID {
			c.lastID = n.ID
		}
	}
	return c
}

// Insert prepends n and assigns it the next id from the catalog counter.
// The stored note is returned.
func (c *Catalog) Insert(n Note) Note {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	n.ID = c.lastID

	notes := make([]Note, 0, len(c.notes)+1)
	notes = append(notes, n)
	c.notes = append(notes, c.notes...)
	return n
}

// All returns a copy of every note in catalog order
func (c *Catalog) All() []Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Len returns the number of notes in the catalog
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.notes)
}

// Lookup retrieves a note by its ID
func (c *Catalog) Lookup(id int64) (Note, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, n := range c.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// NextID returns the id the next insertion will receive
func (c *Catalog) NextID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastID + 1
}
