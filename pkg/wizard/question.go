package wizard

import "context"

// retryMessage is shown verbatim whenever validation rejects an
// answer. There is no retry limit; the wizard blocks until it gets a
// valid line.
const retryMessage = "I didn't understand your answer, please try again"

// question describes one scalar prompt: where the answer is stored,
// what to ask, and how to classify the raw input.
type question struct {
	key      string
	prompt   string
	validate func(string) bool
}

// ask drives a single question to completion. A non-empty stored
// value short-circuits the prompt entirely — that is how a resumed
// session skips already-answered questions. Otherwise it loops
// prompt → validate until satisfied, persists the accepted answer,
// and returns it. Invalid input is never persisted.
func (s *Session) ask(ctx context.Context, q question) (string, error) {
	stored, err := s.store.GetField(ctx, q.key)
	if err != nil {
		return "", err
	}
	if stored != "" {
		s.logger.Debug("answer restored", "key", q.key)
		return stored, nil
	}

	for {
		answer, err := s.prompter.Ask(q.prompt)
		if err != nil {
			return "", err
		}
		if !q.validate(answer) {
			s.prompter.SayError(retryMessage)
			continue
		}
		if err := s.store.SetField(ctx, q.key, answer); err != nil {
			return "", err
		}
		s.logger.Debug("answer accepted", "key", q.key)
		return answer, nil
	}
}
