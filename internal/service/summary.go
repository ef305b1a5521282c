package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/godilite/team-summary/internal/repository/models"
	"go.uber.org/zap"
)

const (
	dbTimeout = 5 * time.Second
)

var (
	ErrInvalidTicket  = errors.New("invalid ticket")
	ErrStorageFailure = errors.New("storage failure")
)

// SummaryService folds tickets into the per-team summary table.
type SummaryService struct {
	storage TeamTotalsRepository
	logger  *zap.Logger
	strict  bool
}

type Option func(*SummaryService)

// WithStrictParsing makes Summarize fail on the first non-numeric field instead
// of letting NaN into the team's averages.
func WithStrictParsing(strict bool) Option {
	return func(s *SummaryService) { s.strict = strict }
}

// NewSummaryService creates a new SummaryService instance.
func NewSummaryService(storage TeamTotalsRepository, logger *zap.Logger, opts ...Option) *SummaryService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	s := &SummaryService{
		storage: storage,
		logger:  logger.Named("summary"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize aggregates tickets per team and orders the teams by ticket count,
// highest first. Teams with equal counts keep the order in which they first appear.
func (s *SummaryService) Summarize(ctx context.Context, tickets []models.Ticket) (SummaryTable, error) {
	parsed, err := s.parseTickets(tickets)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.SaveTickets(dbCtx, parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	totals, err := s.storage.GetTeamTotals(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	table := BuildTable(totals)

	s.logger.Info("aggregated tickets",
		zap.Int("tickets", len(tickets)),
		zap.Int("teams", len(table)))

	return table, nil
}

func (s *SummaryService) parseTickets(tickets []models.Ticket) ([]models.ParsedTicket, error) {
	parsed := make([]models.ParsedTicket, 0, len(tickets))
	for i, t := range tickets {
		minutes, okTime := ParseLeadingInt(string(t.TimeToResolve))
		rating, okRating := ParseLeadingInt(string(t.CustomerSatisfactionRating))

		if !okTime || !okRating {
			field := "time_to_resolve"
			value := string(t.TimeToResolve)
			if okTime {
				field = "customer_satisfaction_rating"
				value = string(t.CustomerSatisfactionRating)
			}
			if s.strict {
				return nil, fmt.Errorf("%w: ticket %d (id %q): %s %q is not a number",
					ErrInvalidTicket, i, t.TicketID, field, value)
			}
			s.logger.Warn("non-numeric ticket field, team averages will be NaN",
				zap.Int("index", i),
				zap.String("ticket_id", t.TicketID),
				zap.String("team", t.AssignedTeam),
				zap.String("field", field),
				zap.String("value", value))
		}

		parsed = append(parsed, models.ParsedTicket{
			Seq:           i,
			Team:          t.AssignedTeam,
			TimeToResolve: minutes,
			Satisfaction:  rating,
		})
	}
	return parsed, nil
}

// BuildTable turns team totals into averages and sorts them by ticket count,
// breaking ties by first appearance.
func BuildTable(totals []models.TeamTotals) SummaryTable {
	sorted := make([]models.TeamTotals, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TicketCount != sorted[j].TicketCount {
			return sorted[i].TicketCount > sorted[j].TicketCount
		}
		return sorted[i].FirstSeen < sorted[j].FirstSeen
	})

	table := make(SummaryTable, 0, len(sorted))
	for _, t := range sorted {
		if t.TicketCount == 0 {
			continue
		}
		count := float64(t.TicketCount)
		table = append(table, TeamSummary{
			Team:                t.Team,
			TicketCount:         t.TicketCount,
			AvgMinutesToResolve: t.SumTimeToResolve / count,
			AvgSatisfaction:     t.SumSatisfaction / count,
		})
	}
	return table
}

// HasInvalidAverages reports whether any row carries a NaN average.
func (t SummaryTable) HasInvalidAverages() bool {
	for _, row := range t {
		if math.IsNaN(row.AvgMinutesToResolve) || math.IsNaN(row.AvgSatisfaction) {
			return true
		}
	}
	return false
}
