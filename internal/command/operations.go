package command

import (
	"fmt"
	"strings"

	"github.com/okruta/rolo/internal/book"
	"github.com/okruta/rolo/internal/field"
)

func opHello(d *Dispatcher, _ Prompter) (string, error) {
	var b strings.Builder
	b.WriteString("Hello! I can help you with the following commands:")
	for _, c := range d.commands {
		fmt.Fprintf(&b, "\n%s: %s", c.Name, c.Description)
	}
	return b.String(), nil
}

// opAdd collects name, phone, and optional birthday, then inserts the
// record. All fields are validated before the book is touched, so a
// failed add leaves no trace.
func opAdd(d *Dispatcher, p Prompter) (string, error) {
	nameRaw, err := p.PromptLine("Contact name: ")
	if err != nil {
		return "", err
	}
	name, err := field.NewName(nameRaw)
	if err != nil {
		return "", err
	}

	phoneRaw, err := p.PromptLine(fmt.Sprintf("Phone number for %s: ", nameRaw))
	if err != nil {
		return "", err
	}
	phone, err := field.NewPhone(phoneRaw)
	if err != nil {
		return "", err
	}

	birthdayRaw, err := p.PromptLine(fmt.Sprintf("Birthday for %s (YYYY-MM-DD, blank to skip): ", nameRaw))
	if err != nil {
		return "", err
	}
	var birthday field.Field
	if strings.TrimSpace(birthdayRaw) != "" {
		birthday, err = field.NewBirthday(birthdayRaw)
		if err != nil {
			return "", err
		}
	}

	record := book.NewRecord(name, birthday)
	record.AddPhone(phone)
	d.book.Add(record)

	return fmt.Sprintf("Added %s with phone number %s.", nameRaw, phoneRaw), nil
}

// opChange validates the new phone before clearing the old ones, so a bad
// phone number cannot wipe a record's existing numbers.
func opChange(d *Dispatcher, p Prompter) (string, error) {
	nameRaw, err := p.PromptLine("Contact to update: ")
	if err != nil {
		return "", err
	}
	record, err := d.book.Get(nameRaw)
	if err != nil {
		return "", err
	}

	phoneRaw, err := p.PromptLine(fmt.Sprintf("New phone number for %s: ", nameRaw))
	if err != nil {
		return "", err
	}
	phone, err := field.NewPhone(phoneRaw)
	if err != nil {
		return "", err
	}

	record.ClearPhones()
	record.AddPhone(phone)
	return fmt.Sprintf("Phone number for %s updated.", nameRaw), nil
}

func opRemovePhone(d *Dispatcher, p Prompter) (string, error) {
	nameRaw, err := p.PromptLine("Contact to remove a phone number from: ")
	if err != nil {
		return "", err
	}
	record, err := d.book.Get(nameRaw)
	if err != nil {
		return "", err
	}

	phoneRaw, err := p.PromptLine(fmt.Sprintf("Phone number to remove from %s: ", nameRaw))
	if err != nil {
		return "", err
	}
	phone, err := field.NewPhone(phoneRaw)
	if err != nil {
		return "", err
	}

	if err := record.RemovePhone(phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number %s removed from %s.", phoneRaw, nameRaw), nil
}

func opRemoveRecord(d *Dispatcher, p Prompter) (string, error) {
	nameRaw, err := p.PromptLine("Contact to remove: ")
	if err != nil {
		return "", err
	}
	// Absent names are not an error: removal is idempotent.
	d.book.Remove(nameRaw)
	return fmt.Sprintf("Contact %s removed.", nameRaw), nil
}

func opPhone(d *Dispatcher, p Prompter) (string, error) {
	nameRaw, err := p.PromptLine("Contact to show phone numbers for: ")
	if err != nil {
		return "", err
	}
	record, err := d.book.Get(nameRaw)
	if err != nil {
		return "", err
	}
	return joinPhones(record), nil
}

func opShowAll(d *Dispatcher, _ Prompter) (string, error) {
	records := d.book.All()
	if len(records) == 0 {
		return "The contact book is empty.", nil
	}

	today := d.now()
	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := fmt.Sprintf("%s: %s", r.Name(), joinPhones(r))
		if days, ok := r.DaysToBirthday(today); ok {
			line += fmt.Sprintf(" (days to birthday: %d)", days)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func opExit(_ *Dispatcher, _ Prompter) (string, error) {
	return "Goodbye!", nil
}

func joinPhones(r *book.Record) string {
	phones := r.Phones()
	raw := make([]string, len(phones))
	for i, p := range phones {
		raw[i] = p.String()
	}
	return strings.Join(raw, ", ")
}
