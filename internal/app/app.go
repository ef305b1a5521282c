package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/godilite/team-summary/internal/config"
	"github.com/godilite/team-summary/internal/loader"
	"github.com/godilite/team-summary/internal/render"
	"github.com/godilite/team-summary/internal/repository"
	"github.com/godilite/team-summary/internal/service"
	dbbuilder "github.com/godilite/team-summary/pkg/database"

	"go.uber.org/zap"
)

type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	dbPool  *sql.DB
	loader  *loader.Loader
	summary *service.SummaryService
	out     io.Writer
}

// NewApp wires the pipeline. The message is written to out.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		loader: loader.New(logger),
		out:    out,
	}

	var storage service.TeamTotalsRepository
	switch cfg.AggregationEngine {
	case config.EngineSQLite:
		dbPool, err := dbbuilder.New(
			dbbuilder.WithDriver(cfg.DBDriver),
			dbbuilder.WithDataSource(cfg.DBPath),
		)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))
		a.dbPool = dbPool
		storage = repository.NewTicketRepository(dbPool)
	default:
		storage = repository.NewMemoryTeamTotalsRepository()
	}

	a.summary = service.NewSummaryService(storage, logger, service.WithStrictParsing(cfg.StrictParsing))
	return a, nil
}

// Run executes load, aggregate and render once, writes the message and
// releases the database pool.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.logger.Info("summary run starting",
		zap.String("tickets_path", a.cfg.TicketsPath),
		zap.String("engine", a.cfg.AggregationEngine))

	tickets := a.loader.Load(a.cfg.TicketsPath)

	table, err := a.summary.Summarize(ctx, tickets)
	if err != nil {
		return fmt.Errorf("aggregate tickets: %w", err)
	}
	if table.HasInvalidAverages() {
		a.logger.Warn("some team averages are NaN because of non-numeric ticket fields")
	}

	msg, err := render.Render(table)
	if err != nil {
		return err
	}

	switch a.cfg.OutputFormat {
	case config.OutputMIME:
		err = render.WriteMIME(a.out, msg, a.cfg.MailFrom, a.cfg.MailTo)
	default:
		err = WriteText(a.out, msg)
	}
	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	a.logger.Info("summary run completed",
		zap.Int("tickets", len(tickets)),
		zap.Int("aggregated_tickets", table.TotalTickets()),
		zap.Int("teams", len(table)))
	return nil
}

// WriteText writes the message as a Subject line followed by a Body line.
func WriteText(w io.Writer, msg render.Message) error {
	_, err := fmt.Fprintf(w, "Subject: %s\nBody: %s\n", msg.Subject, msg.Body)
	return err
}

func (a *App) close() {
	if a.dbPool == nil {
		return
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}
	a.dbPool = nil
}
