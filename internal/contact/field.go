// Package contact defines the validated field values and the Record
// aggregate that make up a single address book entry.
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Sentinel errors for caller-checkable validation failures.
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrPhoneFormat   = errors.New("phone number must be exactly 10 digits")
	ErrDateFormat    = errors.New("invalid date format, use DD.MM.YYYY")
	ErrDateInvalid   = errors.New("no such calendar date")
	ErrPhoneNotFound = errors.New("phone number not found")
)

// phonePattern matches exactly 10 ASCII digits: no separators, no leading +.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// birthdayPattern matches the DD.MM.YYYY shape. Calendar validity is
// checked separately so malformed text and impossible dates fail differently.
var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// birthdayLayout is the wire format for birthdays.
const birthdayLayout = "02.01.2006"

// Name is a contact's display name and its unique key in the book.
type Name string

// ParseName validates a raw name. Any non-empty string is accepted unchanged.
func ParseName(raw string) (Name, error) {
	if raw == "" {
		return "", ErrEmptyName
	}
	return Name(raw), nil
}

// String returns the name text.
func (n Name) String() string { return string(n) }

// Phone is a validated 10-digit phone number.
// Always valid in memory: construct via ParsePhone.
type Phone struct {
	value string
}

// ParsePhone validates a raw phone number string.
func ParsePhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, fmt.Errorf("%w: %q", ErrPhoneFormat, raw)
	}
	return Phone{value: raw}, nil
}

// String returns the phone number digits.
func (p Phone) String() string { return p.value }

// IsZero reports whether p is the zero Phone.
func (p Phone) IsZero() bool { return p.value == "" }

// Birthday is a validated calendar date, stored as a date value rather than
// text so the book can do date arithmetic on it.
type Birthday struct {
	date time.Time
}

// ParseBirthday validates a raw DD.MM.YYYY string. A string that does not
// match the pattern fails with ErrDateFormat; a well-formed string naming an
// impossible date (30.02.2021) fails with ErrDateInvalid.
func ParseBirthday(raw string) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: %q", ErrDateFormat, raw)
	}
	d, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrDateInvalid, raw)
	}
	return Birthday{date: d}, nil
}

// String renders the birthday in DD.MM.YYYY form.
func (b Birthday) String() string { return b.date.Format(birthdayLayout) }

// Date returns the underlying date value.
func (b Birthday) Date() time.Time { return b.date }

// IsZero reports whether b is the zero Birthday.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// NextOccurrence returns the first occurrence of the birthday's day and
// month on or after today. Feb 29 birthdays normalize to Mar 1 in common
// years via Go date arithmetic.
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	occ := time.Date(today.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(day) {
		occ = time.Date(today.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occ
}
