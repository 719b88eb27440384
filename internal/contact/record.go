package contact

import (
	"fmt"
	"strings"
)

// Record aggregates one contact: an immutable name, an ordered phone list
// (duplicates allowed), and at most one optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty Record for the given name.
func NewRecord(name Name) *Record {
	return &Record{name: name}
}

// Name returns the record's key.
func (r *Record) Name() Name { return r.name }

// Phones returns the phone list in insertion order.
// The returned slice is shared; callers must not mutate it.
func (r *Record) Phones() []Phone { return r.phones }

// AddPhone appends a phone to the record. No dedup check: the same number
// may be stored twice.
func (r *Record) AddPhone(p Phone) {
	r.phones = append(r.phones, p)
}

// RemovePhone removes every phone whose textual value equals value.
// Removing a number that is not present is a no-op, not an error.
func (r *Record) RemovePhone(value string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != value {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to old with the validated
// replacement. Returns ErrPhoneNotFound when no phone matches old, or the
// validation error when replacement is not a valid phone. The record is
// unchanged on error.
func (r *Record) EditPhone(old, replacement string) error {
	idx := -1
	for i, p := range r.phones {
		if p.value == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrPhoneNotFound, old)
	}
	p, err := ParsePhone(replacement)
	if err != nil {
		return err
	}
	r.phones[idx] = p
	return nil
}

// SetBirthday validates a raw DD.MM.YYYY string and sets the birthday,
// overwriting any previous value.
func (r *Record) SetBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// DescribeBirthday renders the birthday for display.
func (r *Record) DescribeBirthday() string {
	if r.birthday == nil {
		return "No birthday set."
	}
	return "Birthday: " + r.birthday.String()
}

// String renders the record as a single display line.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.value
	}
	line := fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
	if r.birthday != nil {
		line += ", " + r.DescribeBirthday()
	}
	return line
}
