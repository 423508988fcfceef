// Package main запускает консольный клиент CRM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mmeshcher/jdcrm/internal/audit"
	"github.com/mmeshcher/jdcrm/internal/config"
	"github.com/mmeshcher/jdcrm/internal/repository"
	"github.com/mmeshcher/jdcrm/internal/service"
)

const usage = `usage: jdcrm [flags] <command> [args]

commands:
  migrate            apply database migrations
  seed               load demo data
  overview <code>    show customer summary
  revenue <code>     show customer revenue`

var errUsage = errors.New(usage)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger initialization error:", err)
		os.Exit(2)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = audit.WithActor(ctx, cfg.Actor)

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		sugar.Fatalw("command failed", "error", err)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}

// migrator реализуется хранилищами, которым требуется схема БД.
type migrator interface {
	Migrate(ctx context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	if cfg.Storage == config.StorageMemory {
		return repository.NewMemoryStore(), nil
	}

	store, err := repository.NewPostgresStore(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	if len(cfg.Args) == 0 {
		return errUsage
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage initialization: %w", err)
	}
	defer store.Close()

	reg := repository.NewRegistry(repository.NewSession(store, logger))
	svc := service.FromRegistry(reg, logger)

	cmd, args := cfg.Args[0], cfg.Args[1:]

	// Данные в памяти не переживают процесс, поэтому демонстрационный набор загружается при каждом запуске.
	if cfg.Storage == config.StorageMemory && cmd != "seed" {
		if err := svc.LoadFixtures(ctx); err != nil {
			return err
		}
	}

	switch cmd {
	case "migrate":
		// NewPostgresStore уже применяет миграции, повторный вызов ничего не меняет.
		if m, ok := store.(migrator); ok {
			if err := m.Migrate(ctx); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, "migrations applied")
		return nil

	case "seed":
		if err := svc.LoadFixtures(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "demo data loaded")
		return nil

	case "overview":
		if len(args) != 1 {
			return errUsage
		}
		ov, err := svc.CustomerOverview(ctx, args[0])
		if err != nil {
			return err
		}
		printOverview(out, ov)
		return nil

	case "revenue":
		if len(args) != 1 {
			return errUsage
		}
		revenue, err := svc.Revenue(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, revenue)
		return nil
	}

	return errUsage
}

func printOverview(out io.Writer, ov *service.CustomerOverview) {
	c := ov.Customer
	fmt.Fprintf(out, "%s %s [%s, %s]\n", c.CustomerCode, c.Name, c.Type.Label(), c.Status.Label())
	fmt.Fprintf(out, "revenue: %s\n", ov.Revenue)

	fmt.Fprintf(out, "\ncontacts (%d):\n", len(ov.Contacts))
	for _, ct := range ov.Contacts {
		primary := ""
		if ct.IsPrimary {
			primary = " *"
		}
		fmt.Fprintf(out, "  %s%s %s %s [%s]\n", ct.Name, primary, ct.Title, ct.Email, ct.Status.Label())
	}

	fmt.Fprintf(out, "\nopportunities (%d):\n", len(ov.Opportunities))
	for _, o := range ov.Opportunities {
		amount := "-"
		if o.Amount.Valid {
			amount = o.Amount.Decimal.StringFixed(2)
		}
		fmt.Fprintf(out, "  %s %s %s [%s, %s]\n", o.OpportunityCode, o.Name, amount, o.Stage.Label(), o.Status.Label())
	}

	fmt.Fprintf(out, "\norders (%d):\n", len(ov.Orders))
	for _, o := range ov.Orders {
		fmt.Fprintf(out, "  %s %s %s [%s]\n",
			o.OrderNumber, o.OrderDate.Format("2006-01-02"), o.TotalAmount.StringFixed(2), o.Status.Label())
	}
}
