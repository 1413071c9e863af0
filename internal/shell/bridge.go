package shell

import (
	"errors"

	"github.com/okruta/rolo/internal/command"
)

// ErrPromptCancelled resolves a pending prompt when the user aborts the
// command dialogue with Esc.
var ErrPromptCancelled = errors.New("shell: prompt cancelled")

// Event is delivered from a running command to the TUI model.
// Implemented by PromptMsg and ResultMsg.
type Event interface {
	isShellEvent()
}

// Verify at compile time that message types implement Event.
var (
	_ Event = PromptMsg{}
	_ Event = ResultMsg{}
)

// PromptMsg asks the TUI to collect one line of input from the user.
type PromptMsg struct {
	Text string
}

// ResultMsg carries the outcome of a finished command.
type ResultMsg struct {
	Result command.Result
}

func (PromptMsg) isShellEvent() {}
func (ResultMsg) isShellEvent() {}

// Bridge connects a dispatch goroutine to the TUI event loop. It
// implements command.Prompter: PromptLine blocks the dispatch goroutine
// until the TUI answers or cancels, so command code never knows it is
// talking to an asynchronous front end.
type Bridge struct {
	events  chan Event
	answers chan answer
}

type answer struct {
	line string
	err  error
}

var _ command.Prompter = (*Bridge)(nil)

// NewBridge creates a Bridge with a buffered event channel.
func NewBridge() *Bridge {
	return &Bridge{
		events:  make(chan Event, 16),
		answers: make(chan answer),
	}
}

// Events returns the read-only channel for the TUI to consume.
func (b *Bridge) Events() <-chan Event {
	return b.events
}

// PromptLine publishes a prompt request and blocks until the TUI answers.
// Called from the dispatch goroutine.
func (b *Bridge) PromptLine(prompt string) (string, error) {
	b.events <- PromptMsg{Text: prompt}
	a := <-b.answers
	return a.line, a.err
}

// Answer resolves the pending prompt with the user's line.
// Must only be called while a PromptLine is blocked.
func (b *Bridge) Answer(line string) {
	b.answers <- answer{line: line}
}

// Cancel resolves the pending prompt with ErrPromptCancelled, aborting
// the command mid-dialogue.
func (b *Bridge) Cancel() {
	b.answers <- answer{err: ErrPromptCancelled}
}

// Deliver publishes a finished command result to the TUI.
func (b *Bridge) Deliver(res command.Result) {
	b.events <- ResultMsg{Result: res}
}
