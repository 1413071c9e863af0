package book

import "fmt"

// Book is a name-keyed collection of contact records. Enumeration follows
// insertion order; overwriting a name keeps its original position, the way
// a dictionary overwrite does. Not safe for concurrent use — the shell
// drives it from a single goroutine.
type Book struct {
	records map[string]*Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts a record keyed by its name, overwriting any existing record
// with the same name (last write wins).
func (b *Book) Add(r *Record) {
	name := r.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Remove deletes the record with the given name. Absent names are a no-op.
func (b *Book) Remove(name string) {
	if _, exists := b.records[name]; !exists {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Get returns the record with exactly the given name. The match is
// case-sensitive and untrimmed; a miss is ErrNotFound.
func (b *Book) Get(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: contact %q", ErrNotFound, name)
	}
	return r, nil
}

// All returns every record in insertion order.
func (b *Book) All() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of records in the book.
func (b *Book) Len() int {
	return len(b.records)
}
