// Package cli wires the wizard together for the command line:
// configuration, store selection, terminal IO, signal handling.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fleetform/internal/config"
	"fleetform/internal/presentation/tui"
	"fleetform/pkg/adapters/memory"
	redisadapter "fleetform/pkg/adapters/redis"
	"fleetform/pkg/ports"
	"fleetform/pkg/wizard"
)

// RunOptions carries the flag surface of the run command.
type RunOptions struct {
	Persist    bool
	RedisAddr  string
	Prefix     string
	ConfigPath string
	Fresh      bool
	Debug      bool
	NoColor    bool
}

// resolveConfig overlays flags on the (optional) config file.
func resolveConfig(opts RunOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if opts.RedisAddr != "" {
		cfg.Redis.Addr = opts.RedisAddr
	}
	if opts.Prefix != "" {
		cfg.Redis.Prefix = opts.Prefix
	}
	return cfg, nil
}

func resolveLocale(cfg config.Config) wizard.Locale {
	locale := wizard.DefaultLocale()
	if len(cfg.Locale.YesTokens) > 0 {
		locale.YesTokens = cfg.Locale.YesTokens
	}
	if len(cfg.Locale.NoTokens) > 0 {
		locale.NoTokens = cfg.Locale.NoTokens
	}
	return locale
}

// Execute runs the onboarding wizard until a confirmed recap, a
// signal, or a fatal store error.
func Execute(opts RunOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store ports.AnswerStore
	if opts.Persist {
		rstore, err := redisadapter.Connect(ctx, cfg.Redis.Addr, logger,
			redisadapter.WithPrefix(cfg.Redis.Prefix))
		if err != nil {
			return err
		}
		defer rstore.Close()
		store = rstore
		logger.Info("persistent mode", "addr", cfg.Redis.Addr)
	} else {
		store = memory.NewStore()
	}

	if opts.Fresh {
		if err := store.Flush(ctx); err != nil {
			return err
		}
		printSystemMessage("Stored answers cleared.")
	}

	styled := tui.IsTerminal() && !opts.NoColor
	if styled {
		tui.PrintBanner()
	}

	prompter := wizard.NewPrompter(
		newCancelReader(os.Stdin, ctx.Done()),
		os.Stdout,
		wizard.WithPromptDecorator(tui.PromptDecorator(styled)),
		wizard.WithErrorDecorator(tui.ErrorDecorator(styled)),
	)

	sessionOpts := []wizard.Option{
		wizard.WithLogger(logger),
		wizard.WithLocale(resolveLocale(cfg)),
	}
	if styled {
		sessionOpts = append(sessionOpts,
			wizard.WithRecapRenderer(tui.NewRecapRenderer()),
			wizard.WithClearScreen(tui.ClearScreen),
		)
	}

	session := wizard.NewSession(store, prompter, sessionOpts...)

	if err := session.Run(ctx); err != nil {
		if isCleanStop(err) || ctx.Err() != nil {
			printSystemMessage("Interrupted.")
			return nil
		}
		return err
	}
	return nil
}

// Reset clears every stored answer without running the wizard.
// Only meaningful in persistent mode; the ephemeral store dies with
// the process anyway.
func Reset(opts RunOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := redisadapter.Connect(ctx, cfg.Redis.Addr, logger,
		redisadapter.WithPrefix(cfg.Redis.Prefix))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Flush(ctx); err != nil {
		return err
	}
	printSystemMessage("Stored answers cleared.")
	return nil
}
