package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fleetform/pkg/domain"
)

// Decorator transforms a piece of text before it is written, letting
// the caller plug in terminal styling without coupling this package
// to a rendering library.
type Decorator func(string) string

// Prompter is the single-line terminal primitive the wizard runs on:
// print text, block for one line of keyboard input.
type Prompter struct {
	reader      *bufio.Reader
	writer      io.Writer
	stylePrompt Decorator
	styleError  Decorator
}

// PrompterOption configures a Prompter.
type PrompterOption func(*Prompter)

// WithPromptDecorator styles question text.
func WithPromptDecorator(d Decorator) PrompterOption {
	return func(p *Prompter) {
		p.stylePrompt = d
	}
}

// WithErrorDecorator styles retry messages.
func WithErrorDecorator(d Decorator) PrompterOption {
	return func(p *Prompter) {
		p.styleError = d
	}
}

// NewPrompter creates a Prompter over the given IO pair.
func NewPrompter(r io.Reader, w io.Writer, opts ...PrompterOption) *Prompter {
	identity := func(s string) string { return s }
	p := &Prompter{
		reader:      bufio.NewReader(r),
		writer:      w,
		stylePrompt: identity,
		styleError:  identity,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Say prints a line of text.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.writer, format+"\n", args...)
}

// SayError prints a retry message.
func (p *Prompter) SayError(text string) {
	fmt.Fprintln(p.writer, p.styleError(text))
}

// Ask displays prompt and blocks for one line of input, returned
// newline-stripped and trimmed. A closed input stream surfaces
// domain.ErrInputClosed.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprintln(p.writer, p.stylePrompt(prompt))
	fmt.Fprint(p.writer, "> ")

	line, err := p.reader.ReadString('\n')
	if err != nil {
		// A final unterminated line is still an answer.
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", domain.ErrInputClosed
		}
		return "", fmt.Errorf("input error: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question and re-asks until the answer
// matches one of the token sets, case-insensitively.
func (p *Prompter) Confirm(prompt string, yesTokens, noTokens []string) (bool, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return false, err
		}
		if matchToken(answer, yesTokens) {
			return true, nil
		}
		if matchToken(answer, noTokens) {
			return false, nil
		}
		p.SayError(retryMessage)
	}
}
