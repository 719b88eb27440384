// Package book implements the in-memory address book: an insertion-order
// preserving collection of contact records keyed by name, plus the
// upcoming-birthday query.
package book

import "github.com/smileynet/rolodex/internal/contact"

// Book maps contact names to records. Iteration order is insertion order,
// which the listing commands rely on. Not safe for concurrent use; the
// embedding application owns any locking policy.
type Book struct {
	records map[string]*contact.Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// Add appends a phone to the record for name, creating the record first when
// none exists. Returns true when a new record was created, false when the
// phone was appended to an existing one.
func (b *Book) Add(name contact.Name, p contact.Phone) bool {
	key := name.String()
	rec, ok := b.records[key]
	if !ok {
		rec = contact.NewRecord(name)
		b.records[key] = rec
		b.order = append(b.order, key)
	}
	rec.AddPhone(p)
	return !ok
}

// Find returns the record for name, if present. Exact-string lookup only.
func (b *Book) Find(name string) (*contact.Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for name. Deleting an absent name is a no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Records returns all records in insertion order.
func (b *Book) Records() []*contact.Record {
	recs := make([]*contact.Record, 0, len(b.order))
	for _, key := range b.order {
		recs = append(recs, b.records[key])
	}
	return recs
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }
