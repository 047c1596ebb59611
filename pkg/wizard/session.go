// Package wizard implements the onboarding prompt flow: a fixed
// sequence of validated questions, incremental list collection,
// a recap, and a confirm-or-restart loop. Persistence is abstracted
// behind ports.AnswerStore; with the redis adapter every validated
// answer survives a process restart and pre-fills its question.
package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"fleetform/internal/logging"
	"fleetform/pkg/domain"
	"fleetform/pkg/ports"
)

// Session owns one wizard run: the store, the terminal, and the
// locale. It is single-threaded; exactly one prompt is outstanding
// at any time.
type Session struct {
	store    ports.AnswerStore
	prompter *Prompter
	locale   Locale
	logger   *slog.Logger
	renderer ContentRenderer
	clear    func()
}

// Option configures a Session.
type Option func(*Session)

// WithLocale overrides the default English locale.
func WithLocale(l Locale) Option {
	return func(s *Session) {
		s.locale = l
	}
}

// WithLogger sets a structured logger for accepted-answer tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRecapRenderer sets the recap renderer (e.g. markdown to ANSI).
func WithRecapRenderer(r ContentRenderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithClearScreen sets the function invoked before a restart.
func WithClearScreen(clear func()) Option {
	return func(s *Session) {
		s.clear = clear
	}
}

// NewSession creates a wizard session over the given store and terminal.
func NewSession(store ports.AnswerStore, prompter *Prompter, opts ...Option) *Session {
	s := &Session{
		store:    store,
		prompter: prompter,
		locale:   DefaultLocale(),
		logger:   logging.NewNop(),
		clear:    func() {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the full question sequence, shows the recap, and asks
// for confirmation. A rejected recap flushes the store, clears the
// screen, and restarts from the first question; an accepted recap
// flushes the store and returns nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		profile, err := s.collectProfile(ctx)
		if err != nil {
			return err
		}

		s.showRecap(profile)

		confirmed, err := s.prompter.Confirm(
			"Is everything correct? (yes/no)",
			s.locale.YesTokens, s.locale.NoTokens)
		if err != nil {
			return err
		}

		// The store is cleared on both branches: a reject restarts
		// the wizard from a blank slate, not from the answers the
		// operator just disowned.
		if err := s.store.Flush(ctx); err != nil {
			return fmt.Errorf("failed to clear stored answers: %w", err)
		}

		if confirmed {
			s.prompter.Say("Great, %s is all set. Welcome aboard!", profile.CompanyName)
			return nil
		}

		s.logger.Info("recap rejected, restarting")
		s.clear()
	}
}

// collectProfile walks the fixed question order and materializes the
// answers into a Profile. Plain sequential flow: each step awaits the
// previous one, no recursion, no continuation callbacks.
func (s *Session) collectProfile(ctx context.Context) (*domain.Profile, error) {
	userName, err := s.ask(ctx, question{
		key:      domain.KeyUserName,
		prompt:   "Hello! What is your name?",
		validate: domain.IsNonEmptyText,
	})
	if err != nil {
		return nil, err
	}

	companyName, err := s.ask(ctx, question{
		key:      domain.KeyCompanyName,
		prompt:   fmt.Sprintf("Nice to meet you, %s! What is the name of your company?", userName),
		validate: domain.IsNonEmptyText,
	})
	if err != nil {
		return nil, err
	}

	employeeCount, err := s.askCount(ctx, domain.KeyEmployeeCount,
		fmt.Sprintf("How many employees work at %s?", companyName))
	if err != nil {
		return nil, err
	}

	employeeNames, err := s.collectList(ctx, domain.KeyEmployeeNames, employeeCount,
		func(ordinal int) string {
			return fmt.Sprintf("What is the name of the %s employee?", s.locale.Ordinal(ordinal))
		},
		domain.IsNonEmptyText)
	if err != nil {
		return nil, err
	}

	truckCount, err := s.askCount(ctx, domain.KeyTruckCount,
		fmt.Sprintf("How many trucks does %s operate?", companyName))
	if err != nil {
		return nil, err
	}

	rawVolumes, err := s.collectList(ctx, domain.KeyTruckVolumes, truckCount,
		func(ordinal int) string {
			return fmt.Sprintf("What is the volume (in m3) of the %s truck?", s.locale.Ordinal(ordinal))
		},
		domain.IsPositiveVolume)
	if err != nil {
		return nil, err
	}

	truckType, err := s.ask(ctx, question{
		key:      domain.KeyTruckType,
		prompt:   "What type of truck does your fleet use?",
		validate: domain.IsNonEmptyText,
	})
	if err != nil {
		return nil, err
	}

	volumes := make([]float64, len(rawVolumes))
	for i, raw := range rawVolumes {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// Stored volumes passed validation before persisting.
			return nil, fmt.Errorf("corrupt stored volume %q: %w", raw, err)
		}
		volumes[i] = v
	}

	return &domain.Profile{
		UserName:      userName,
		CompanyName:   companyName,
		EmployeeCount: employeeCount,
		EmployeeNames: employeeNames,
		TruckCount:    truckCount,
		TruckVolumes:  volumes,
		TruckType:     truckType,
	}, nil
}

// askCount asks a positive-integer question and parses the answer.
func (s *Session) askCount(ctx context.Context, key, prompt string) (int, error) {
	answer, err := s.ask(ctx, question{
		key:      key,
		prompt:   prompt,
		validate: domain.IsPositiveInt,
	})
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("corrupt stored count %q: %w", answer, err)
	}
	return n, nil
}

func (s *Session) showRecap(profile *domain.Profile) {
	recap := buildRecap(profile)
	if s.renderer != nil {
		if rendered, err := s.renderer(recap); err == nil {
			recap = rendered
		}
	}
	s.prompter.Say("%s", recap)
}
