package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"interpreting-payments/cmd/bootstrap"
	"interpreting-payments/internal/pkg/config"
	"interpreting-payments/internal/pkg/errs"
	"interpreting-payments/internal/usecase"
	"interpreting-payments/internal/usecase/readmodel"
	"interpreting-payments/internal/usecase/request"

	"go.uber.org/fx"
)

const (
	exitOK = iota
	exitFailure
	exitInvalidRequest
)

// runQuote prices the request file named by the config and writes the quote as JSON.
func runQuote(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, quotes usecase.QuoteUseCase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			code := exitOK
			if err := quote(ctx, cfg.Quote, quotes); err != nil {
				logger.Error("quote failed", "error", err, "stack", errs.ExtractStackLines(err, 12))
				code = exitFailure
				if errs.Is(err, usecase.ErrInvalidQuoteRequest) {
					code = exitInvalidRequest
				}
			}
			return shutdowner.Shutdown(fx.ExitCode(code))
		},
	})
}

func quote(ctx context.Context, cfg config.QuoteConfig, quotes usecase.QuoteUseCase) error {
	raw, err := os.ReadFile(cfg.RequestPath)
	if err != nil {
		return errs.Wrapf(err, "failed to read request %s", cfg.RequestPath)
	}

	var req request.QuoteRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode request"), usecase.ErrInvalidQuoteRequest)
	}

	rm, err := quotes.Quote(ctx, req)
	if err != nil {
		return err
	}

	var out io.WriteCloser = stdout{os.Stdout}
	if cfg.OutputPath != "" && cfg.OutputPath != "-" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return errs.Wrapf(err, "failed to create output %s", cfg.OutputPath)
		}
		out = f
	}
	return writeQuote(out, rm)
}

// writeQuote encodes rm to w and always closes w. The close error is returned when the
// encode itself succeeded.
func writeQuote(w io.WriteCloser, rm *readmodel.QuoteRM) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rm); err != nil {
		_ = w.Close()
		return errs.Wrap(err, "failed to encode quote")
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(err, "failed to close output")
	}
	return nil
}

// stdout is never closed.
type stdout struct{ io.Writer }

func (stdout) Close() error { return nil }

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Invoke(
			runQuote,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(exitFailure)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	os.Exit(sig.ExitCode)
}
