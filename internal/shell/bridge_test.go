package shell

import (
	"strings"
	"testing"
	"time"

	"github.com/okruta/rolo/internal/book"
	"github.com/okruta/rolo/internal/command"
)

// runDialogue dispatches token on a goroutine and plays answers back from
// the test, returning the final result. Fails the test on a stuck channel.
func runDialogue(t *testing.T, d *command.Dispatcher, token string, answers []string) command.Result {
	t.Helper()

	b := NewBridge()
	go func() {
		b.Deliver(d.Dispatch(token, b))
	}()

	i := 0
	for {
		select {
		case ev := <-b.Events():
			switch ev := ev.(type) {
			case PromptMsg:
				if i >= len(answers) {
					t.Fatalf("unexpected prompt %q after %d answers", ev.Text, i)
				}
				b.Answer(answers[i])
				i++
			case ResultMsg:
				return ev.Result
			}
		case <-time.After(2 * time.Second):
			t.Fatal("dialogue stalled waiting for an event")
		}
	}
}

func TestBridge_FullAddDialogue(t *testing.T) {
	d := command.New(book.New())

	res := runDialogue(t, d, "add", []string{"Alice", "0501234567", ""})

	if res.Failed {
		t.Fatalf("add failed: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Added Alice") {
		t.Errorf("result = %q, want added confirmation", res.Text)
	}
	if _, err := d.Book().Get("Alice"); err != nil {
		t.Errorf("Get(Alice) error = %v, want contact present", err)
	}
}

func TestBridge_CancelAbortsCommand(t *testing.T) {
	d := command.New(book.New())

	b := NewBridge()
	go func() {
		b.Deliver(d.Dispatch("add", b))
	}()

	for {
		select {
		case ev := <-b.Events():
			switch ev := ev.(type) {
			case PromptMsg:
				b.Cancel()
			case ResultMsg:
				if !ev.Result.Failed {
					t.Errorf("cancelled command should fail, got %q", ev.Result.Text)
				}
				if ev.Result.Text != "Input error. Please try again." {
					t.Errorf("result = %q, want input error message", ev.Result.Text)
				}
				if d.Book().Len() != 0 {
					t.Errorf("book length = %d, want 0 after cancel", d.Book().Len())
				}
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatal("dialogue stalled waiting for an event")
		}
	}
}

func TestBridge_EventsBufferedForPromptSequence(t *testing.T) {
	d := command.New(book.New())

	// change prompts twice; both answers flow through the same bridge.
	runDialogue(t, d, "add", []string{"Bob", "0507654321", ""})
	res := runDialogue(t, d, "change", []string{"Bob", "0501112233"})

	if res.Failed {
		t.Fatalf("change failed: %q", res.Text)
	}
	rec, err := d.Book().Get("Bob")
	if err != nil {
		t.Fatalf("Get(Bob) error = %v", err)
	}
	phones := rec.Phones()
	if len(phones) != 1 || phones[0].String() != "0501112233" {
		t.Errorf("phones = %v, want single replaced number", phones)
	}
}

func TestBridge_QuitResultPassesThrough(t *testing.T) {
	d := command.New(book.New())

	res := runDialogue(t, d, "exit", nil)
	if !res.Quit {
		t.Error("exit result should carry Quit")
	}
	if res.Text != "Goodbye!" {
		t.Errorf("result = %q, want %q", res.Text, "Goodbye!")
	}
}
