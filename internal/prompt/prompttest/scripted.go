// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"fmt"
	"slices"
	"sync"

	"github.com/colonyops/probar/internal/prompt"
)

// Kind identifies the prompt method that was called.
type Kind string

const (
	KindInput   Kind = "input"
	KindSelect  Kind = "select"
	KindConfirm Kind = "confirm"
)

// Call captures one prompt that was shown.
type Call struct {
	Kind    Kind
	Title   string
	Initial string
	Options []string
}

// Answer is the scripted reply to one prompt.
type Answer struct {
	Value   string
	Confirm bool
	Err     error
}

// Text answers an Input or Select prompt with v.
func Text(v string) Answer { return Answer{Value: v} }

// Yes answers a Confirm prompt affirmatively.
func Yes() Answer { return Answer{Confirm: true} }

// No answers a Confirm prompt negatively.
func No() Answer { return Answer{Confirm: false} }

// Abort cancels the prompt.
func Abort() Answer { return Answer{Err: prompt.ErrAborted} }

// Keep answers an Input prompt with its pre-filled value.
func Keep() Answer { return Answer{Value: keepSentinel} }

const keepSentinel = "\x00keep"

// Scripted replays answers in order and records every prompt. Running out
// of answers behaves like a cancelled prompt.
type Scripted struct {
	mu      sync.Mutex
	answers []Answer
	Calls   []Call
}

var _ prompt.Prompter = (*Scripted)(nil)

// New creates a Scripted prompter.
func New(answers ...Answer) *Scripted {
	return &Scripted{answers: answers}
}

// Remaining returns the number of unused answers.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Titles returns the titles of all recorded prompts.
func (s *Scripted) Titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Calls))
	for i, c := range s.Calls {
		out[i] = c.Title
	}
	return out
}

func (s *Scripted) next(c Call) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, c)
	if len(s.answers) == 0 {
		return Answer{}, prompt.ErrAborted
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, a.Err
}

// Input implements prompt.Prompter.
func (s *Scripted) Input(title, initial string) (string, error) {
	a, err := s.next(Call{Kind: KindInput, Title: title, Initial: initial})
	if err != nil {
		return "", err
	}
	if a.Value == keepSentinel {
		return initial, nil
	}
	return a.Value, nil
}

// Select implements prompt.Prompter. The scripted value must be one of the
// offered options.
func (s *Scripted) Select(title string, options []string) (string, error) {
	a, err := s.next(Call{Kind: KindSelect, Title: title, Options: slices.Clone(options)})
	if err != nil {
		return "", err
	}
	if !slices.Contains(options, a.Value) {
		return "", fmt.Errorf("scripted answer %q is not an option of %q: %v", a.Value, title, options)
	}
	return a.Value, nil
}

// Confirm implements prompt.Prompter.
func (s *Scripted) Confirm(title string) (bool, error) {
	a, err := s.next(Call{Kind: KindConfirm, Title: title})
	if err != nil {
		return false, err
	}
	return a.Confirm, nil
}
