// Package command maps shell tokens to contact book operations and
// translates operation failures into user-facing messages.
package command

import (
	"errors"
	"strings"
	"time"

	"github.com/okruta/rolo/internal/book"
)

// Prompter supplies one line of user input per prompt. The shell owns the
// terminal; operations only ever see this contract.
type Prompter interface {
	PromptLine(prompt string) (string, error)
}

// Result is the outcome of dispatching one command token.
type Result struct {
	Text    string
	Failed  bool // operation failed and Text is a recovery message
	Invalid bool // token is not a known command; nothing was dispatched
	Quit    bool // exit command: the driving loop must stop
}

// Recovery messages produced at the dispatch boundary. Operations return
// errors and never print; translation happens in exactly one place.
const (
	msgInputError      = "Input error. Please try again."
	msgContactNotFound = "No contact with that name was found."
	msgInvalidCommand  = "Invalid command."
)

// Command pairs a token with its operation and its help description.
type Command struct {
	Name        string
	Description string
	run         func(d *Dispatcher, p Prompter) (string, error)
	quit        bool
}

// Dispatcher owns the contact book and the fixed command table.
type Dispatcher struct {
	book     *book.Book
	now      func() time.Time
	commands []Command
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithNow overrides the clock used for birthday arithmetic. Tests use this
// to pin "today".
func WithNow(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// New creates a Dispatcher over the given contact book.
func New(b *book.Book, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book: b,
		now:  time.Now,
	}
	d.commands = commandTable()
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Book returns the contact book the dispatcher operates on.
func (d *Dispatcher) Book() *book.Book { return d.book }

// Commands returns the command table in display order.
func (d *Dispatcher) Commands() []Command {
	out := make([]Command, len(d.commands))
	copy(out, d.commands)
	return out
}

// Dispatch resolves a token (case-insensitive, whitespace-trimmed) and runs
// its operation. Unknown tokens short-circuit without prompting. Operation
// errors are translated here: invalid input and prompt failures become a
// generic input-error message, missed lookups a contact-not-found message.
// The book is left unmodified on any failure.
func (d *Dispatcher) Dispatch(token string, p Prompter) Result {
	name := strings.ToLower(strings.TrimSpace(token))

	var cmd *Command
	for i := range d.commands {
		if d.commands[i].Name == name {
			cmd = &d.commands[i]
			break
		}
	}
	if cmd == nil {
		return Result{Text: msgInvalidCommand, Invalid: true}
	}

	text, err := cmd.run(d, p)
	if err != nil {
		return Result{Text: recoveryMessage(err), Failed: true}
	}
	return Result{Text: text, Quit: cmd.quit}
}

// recoveryMessage classifies an operation error into user-facing text.
func recoveryMessage(err error) string {
	if errors.Is(err, book.ErrNotFound) {
		return msgContactNotFound
	}
	// field.ErrInvalidFormat, prompt read failures, and anything else
	// malformed all recover the same way.
	return msgInputError
}

// commandTable builds the fixed command set in display order.
func commandTable() []Command {
	return []Command{
		{
			Name:        "hello",
			Description: "List the available commands.",
			run:         opHello,
		},
		{
			Name:        "add",
			Description: "Add a new contact: name, phone number, and an optional birthday.",
			run:         opAdd,
		},
		{
			Name:        "change",
			Description: "Replace the phone numbers of an existing contact with a new one.",
			run:         opChange,
		},
		{
			Name:        "remove_phone",
			Description: "Remove one phone number from an existing contact.",
			run:         opRemovePhone,
		},
		{
			Name:        "remove_record",
			Description: "Remove a contact entirely.",
			run:         opRemoveRecord,
		},
		{
			Name:        "phone",
			Description: "Show the phone numbers of a contact.",
			run:         opPhone,
		},
		{
			Name:        "show_all",
			Description: "Show every contact with phone numbers and days to birthday.",
			run:         opShowAll,
		},
		{
			Name:        "exit",
			Description: "Leave the contact book.",
			run:         opExit,
			quit:        true,
		},
	}
}
