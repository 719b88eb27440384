package book

import (
	"testing"
	"time"

	"github.com/smileynet/rolodex/internal/contact"
)

// monday is 01.01.2024, a Monday, used as "today" throughout.
var monday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// addWithBirthday inserts a record with a single phone and the given birthday.
func addWithBirthday(t *testing.T, b *Book, name contact.Name, birthday string) {
	t.Helper()
	b.Add(name, mustPhone(t, "1234567890"))
	rec, _ := b.Find(name.String())
	if err := rec.SetBirthday(birthday); err != nil {
		t.Fatalf("SetBirthday(%q) error = %v", birthday, err)
	}
}

func reminderNames(rems []Reminder) []string {
	names := make([]string, len(rems))
	for i, r := range rems {
		names[i] = r.Name.String()
	}
	return names
}

func TestBook_Upcoming_WindowBoundary(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		wantIn   bool
	}{
		{name: "today counts", birthday: "01.01.1990", wantIn: true},
		{name: "inside window", birthday: "04.01.1990", wantIn: true},
		{name: "exactly window days out is inclusive", birthday: "08.01.1990", wantIn: true},
		{name: "one past the window", birthday: "09.01.1990", wantIn: false},
		{name: "just passed rolls to next year", birthday: "31.12.1990", wantIn: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			addWithBirthday(t, b, "John", tt.birthday)

			rems := b.Upcoming(monday, DefaultWindow)
			if got := len(rems) == 1; got != tt.wantIn {
				t.Errorf("included = %v, want %v", got, tt.wantIn)
			}
		})
	}
}

func TestBook_Upcoming_DaysUntil(t *testing.T) {
	b := New()
	addWithBirthday(t, b, "John", "04.01.1990")

	rems := b.Upcoming(monday, DefaultWindow)
	if len(rems) != 1 {
		t.Fatalf("reminder count = %d, want 1", len(rems))
	}
	if rems[0].DaysUntil != 3 {
		t.Errorf("DaysUntil = %d, want 3", rems[0].DaysUntil)
	}
}

func TestBook_Upcoming_WeekendShift(t *testing.T) {
	tests := []struct {
		name            string
		birthday        string
		wantCelebration time.Time
	}{
		// 06.01.2024 is a Saturday, 07.01.2024 a Sunday.
		{name: "saturday shifts to monday", birthday: "06.01.1990", wantCelebration: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)},
		{name: "sunday shifts to monday", birthday: "07.01.1990", wantCelebration: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)},
		{name: "weekday unshifted", birthday: "05.01.1990", wantCelebration: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			addWithBirthday(t, b, "John", tt.birthday)

			rems := b.Upcoming(monday, DefaultWindow)
			if len(rems) != 1 {
				t.Fatalf("reminder count = %d, want 1", len(rems))
			}
			if !rems[0].Celebration.Equal(tt.wantCelebration) {
				t.Errorf("Celebration = %v, want %v", rems[0].Celebration, tt.wantCelebration)
			}
		})
	}
}

func TestBook_Upcoming_InclusionUsesUnshiftedDistance(t *testing.T) {
	// Saturday 06.01 is 5 days out: included on the unshifted gap even
	// though the celebration lands on 08.01.
	b := New()
	addWithBirthday(t, b, "John", "06.01.1990")

	rems := b.Upcoming(monday, 5)
	if len(rems) != 1 {
		t.Fatalf("reminder count = %d, want 1", len(rems))
	}
	if rems[0].DaysUntil != 5 {
		t.Errorf("DaysUntil = %d, want 5 (unshifted)", rems[0].DaysUntil)
	}
	if got := rems[0].Celebration.Day(); got != 8 {
		t.Errorf("Celebration day = %d, want 8 (shifted to Monday)", got)
	}
}

func TestBook_Upcoming_YearRollover(t *testing.T) {
	// Window spans the year boundary: 30.12.2024 is a Monday, the birthday
	// occurrence is 02.01.2025, three days out.
	today := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	b := New()
	addWithBirthday(t, b, "John", "02.01.1990")

	rems := b.Upcoming(today, DefaultWindow)
	if len(rems) != 1 {
		t.Fatalf("reminder count = %d, want 1", len(rems))
	}
	if rems[0].DaysUntil != 3 {
		t.Errorf("DaysUntil = %d, want 3", rems[0].DaysUntil)
	}
	if got := rems[0].Celebration.Year(); got != 2025 {
		t.Errorf("Celebration year = %d, want 2025", got)
	}
}

func TestBook_Upcoming_SkipsRecordsWithoutBirthday(t *testing.T) {
	b := New()
	b.Add("NoBirthday", mustPhone(t, "1234567890"))
	addWithBirthday(t, b, "John", "04.01.1990")

	rems := b.Upcoming(monday, DefaultWindow)
	if got := reminderNames(rems); len(got) != 1 || got[0] != "John" {
		t.Errorf("reminders = %v, want [John]", got)
	}
}

func TestBook_Upcoming_InsertionOrder(t *testing.T) {
	b := New()
	addWithBirthday(t, b, "Carol", "05.01.1990")
	addWithBirthday(t, b, "Alice", "02.01.1990")
	addWithBirthday(t, b, "Bob", "04.01.1990")

	rems := b.Upcoming(monday, DefaultWindow)
	want := []string{"Carol", "Alice", "Bob"}
	got := reminderNames(rems)
	if len(got) != len(want) {
		t.Fatalf("reminder count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reminders[%d] = %q, want %q (insertion order, not date order)", i, got[i], want[i])
		}
	}
}

func TestBook_Upcoming_EmptyBook(t *testing.T) {
	b := New()
	if rems := b.Upcoming(monday, DefaultWindow); len(rems) != 0 {
		t.Errorf("reminder count = %d, want 0 for empty book", len(rems))
	}
}

func TestBook_Upcoming_MidDayToday(t *testing.T) {
	// A wall-clock "today" with a time component must not skew day counts.
	today := time.Date(2024, time.January, 1, 17, 45, 3, 0, time.UTC)
	b := New()
	addWithBirthday(t, b, "John", "08.01.1990")

	rems := b.Upcoming(today, DefaultWindow)
	if len(rems) != 1 {
		t.Fatalf("reminder count = %d, want 1", len(rems))
	}
	if rems[0].DaysUntil != 7 {
		t.Errorf("DaysUntil = %d, want 7", rems[0].DaysUntil)
	}
}
