package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/godilite/team-summary/internal/repository/models"
)

const ticketSchema = `
	CREATE TABLE IF NOT EXISTS tickets (
		seq             INTEGER PRIMARY KEY,
		team            TEXT NOT NULL,
		time_to_resolve REAL,
		satisfaction    REAL
	)
`

// TicketRepository stages parsed tickets in SQL and folds them into team totals there.
type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// SaveTickets replaces the staged tickets with the given ones in a single transaction.
func (s *TicketRepository) SaveTickets(ctx context.Context, tickets []models.ParsedTicket) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin SaveTickets: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, ticketSchema); err != nil {
		return fmt.Errorf("create tickets table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tickets`); err != nil {
		return fmt.Errorf("clear tickets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tickets (seq, team, time_to_resolve, satisfaction)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare SaveTickets: %w", err)
	}
	defer stmt.Close()

	for _, t := range tickets {
		if _, err := stmt.ExecContext(ctx, t.Seq, t.Team, nullableFloat(t.TimeToResolve), nullableFloat(t.Satisfaction)); err != nil {
			return fmt.Errorf("insert ticket %d: %w", t.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit SaveTickets: %w", err)
	}
	return nil
}

// GetTeamTotals sums the staged tickets per team. A team with any NULL value in a
// column gets NaN for that sum.
func (s *TicketRepository) GetTeamTotals(ctx context.Context) ([]models.TeamTotals, error) {
	const query = `
		SELECT
			team,
			MIN(seq) AS first_seen,
			COUNT(*) AS ticket_count,
			COALESCE(SUM(time_to_resolve), 0) AS sum_time_to_resolve,
			COUNT(*) - COUNT(time_to_resolve) AS invalid_time_to_resolve,
			COALESCE(SUM(satisfaction), 0) AS sum_satisfaction,
			COUNT(*) - COUNT(satisfaction) AS invalid_satisfaction
		FROM tickets
		GROUP BY team
		ORDER BY ticket_count DESC, first_seen ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query GetTeamTotals: %w", err)
	}
	defer rows.Close()

	var results []models.TeamTotals
	for rows.Next() {
		var (
			t                         models.TeamTotals
			invalidTime, invalidScore int
		)
		if err := rows.Scan(&t.Team, &t.FirstSeen, &t.TicketCount, &t.SumTimeToResolve, &invalidTime, &t.SumSatisfaction, &invalidScore); err != nil {
			return nil, fmt.Errorf("scan GetTeamTotals row: %w", err)
		}
		if invalidTime > 0 {
			t.SumTimeToResolve = math.NaN()
		}
		if invalidScore > 0 {
			t.SumSatisfaction = math.NaN()
		}
		results = append(results, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetTeamTotals: %w", err)
	}
	return results, nil
}

func nullableFloat(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}
