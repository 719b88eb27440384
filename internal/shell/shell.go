// Package shell tokenizes command lines and dispatches them to address book
// operations. It is the only place core errors are converted to user text.
package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// celebrationLayout formats celebration dates in command replies.
const celebrationLayout = "02.01.2006"

// defaultHelp is the fallback command reference when no embedded help text
// is supplied.
const defaultHelp = `Commands:
  hello                              greeting
  add <name> <phone>                 add a contact or append a phone
  change <name> <old> <new>          replace a phone number
  phone <name>                       list a contact's phones
  all                                list every contact
  delete <name>                      remove a contact
  add-birthday <name> <DD.MM.YYYY>   set a contact's birthday
  show-birthday <name>               show a contact's birthday
  birthdays                          birthdays coming up soon
  close | exit                       leave the session`

// Shell executes commands against a single address book.
type Shell struct {
	book   *book.Book
	window int
	now    func() time.Time
	help   string
}

// Option configures a Shell.
type Option func(*Shell)

// WithWindow sets the birthday reminder window in days.
func WithWindow(days int) Option {
	return func(s *Shell) { s.window = days }
}

// WithClock sets the clock used for the birthdays command. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

// WithHelp sets the text returned by the help command.
func WithHelp(text string) Option {
	return func(s *Shell) { s.help = text }
}

// New creates a Shell bound to the given book.
func New(b *book.Book, opts ...Option) *Shell {
	s := &Shell{
		book:   b,
		window: book.DefaultWindow,
		now:    time.Now,
		help:   defaultHelp,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs one command line and returns the reply text plus whether the
// session should end. A failing command reports a one-line "Error: ..."
// message and never corrupts book state.
func (s *Shell) Execute(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "close", "exit":
		return "Good bye!", true
	case "hello":
		return "How can I help you?", false
	case "help":
		return s.help, false
	}

	reply, err := s.dispatch(cmd, args)
	if err != nil {
		return "Error: " + err.Error(), false
	}
	return reply, false
}

// dispatch routes a command to its handler.
func (s *Shell) dispatch(cmd string, args []string) (string, error) {
	switch cmd {
	case "add":
		return s.add(args)
	case "change":
		return s.change(args)
	case "phone":
		return s.phone(args)
	case "all":
		return s.all()
	case "delete":
		return s.delete(args)
	case "add-birthday":
		return s.addBirthday(args)
	case "show-birthday":
		return s.showBirthday(args)
	case "birthdays":
		return s.birthdays()
	default:
		return "Invalid command.", nil
	}
}

func (s *Shell) add(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: add <name> <phone>")
	}
	name, err := contact.ParseName(args[0])
	if err != nil {
		return "", err
	}
	phone, err := contact.ParsePhone(args[1])
	if err != nil {
		return "", err
	}
	if s.book.Add(name, phone) {
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

func (s *Shell) change(args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("usage: change <name> <old_phone> <new_phone>")
	}
	rec, ok := s.book.Find(args[0])
	if !ok {
		return "Contact not found.", nil
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number updated for %s.", rec.Name()), nil
}

func (s *Shell) phone(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: phone <name>")
	}
	rec, ok := s.book.Find(args[0])
	if !ok {
		return "Contact not found.", nil
	}
	phones := rec.Phones()
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, ", "), nil
}

func (s *Shell) all() (string, error) {
	recs := s.book.Records()
	if len(recs) == 0 {
		return "No contacts in the address book.", nil
	}
	lines := make([]string, len(recs))
	for i, rec := range recs {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Shell) delete(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: delete <name>")
	}
	if _, ok := s.book.Find(args[0]); !ok {
		return "Contact not found.", nil
	}
	s.book.Delete(args[0])
	return "Contact deleted.", nil
}

func (s *Shell) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: add-birthday <name> <DD.MM.YYYY>")
	}
	rec, ok := s.book.Find(args[0])
	if !ok {
		return "Contact not found.", nil
	}
	if err := rec.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s.", rec.Name()), nil
}

func (s *Shell) showBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: show-birthday <name>")
	}
	rec, ok := s.book.Find(args[0])
	if !ok {
		return "Contact not found.", nil
	}
	return rec.DescribeBirthday(), nil
}

func (s *Shell) birthdays() (string, error) {
	reminders := s.book.Upcoming(s.now(), s.window)
	if len(reminders) == 0 {
		return "No upcoming birthdays.", nil
	}
	lines := make([]string, len(reminders))
	for i, r := range reminders {
		lines[i] = fmt.Sprintf("%s: %s", r.Name, r.Celebration.Format(celebrationLayout))
	}
	return strings.Join(lines, "\n"), nil
}
