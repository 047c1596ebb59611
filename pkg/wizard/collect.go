package wizard

import "context"

// collectList repeats a prompt until the list under key holds exactly
// target entries, in the order the operator supplied them.
//
// Already-stored entries are reused untouched and only the remaining
// ordinals are asked — this is the resumption path. When the stored
// list is LONGER than the new target (the operator lowered a count
// between sessions) the surplus tail is trimmed away first, so a
// recap never shows more entries than the count it was keyed on.
func (s *Session) collectList(ctx context.Context, key string, target int, prompt func(ordinal int) string, validate func(string) bool) ([]string, error) {
	have, err := s.store.ListLen(ctx, key)
	if err != nil {
		return nil, err
	}

	if have > int64(target) {
		s.logger.Debug("stored list exceeds target, trimming",
			"key", key, "stored", have, "target", target)
		if err := s.store.TrimList(ctx, key, int64(target)); err != nil {
			return nil, err
		}
		have = int64(target)
	}

	for ordinal := int(have) + 1; ordinal <= target; ordinal++ {
		for {
			answer, err := s.prompter.Ask(prompt(ordinal))
			if err != nil {
				return nil, err
			}
			if !validate(answer) {
				s.prompter.SayError(retryMessage)
				continue
			}
			if _, err := s.store.AppendItem(ctx, key, answer); err != nil {
				return nil, err
			}
			break
		}
	}

	return s.store.ListItems(ctx, key, 0, -1)
}
