package repository

import (
	"context"

	"github.com/godilite/team-summary/internal/repository/models"
)

// MemoryTeamTotalsRepository folds tickets into a map keyed by team.
type MemoryTeamTotalsRepository struct {
	totals map[string]*models.TeamTotals
	order  []string
}

func NewMemoryTeamTotalsRepository() *MemoryTeamTotalsRepository {
	return &MemoryTeamTotalsRepository{totals: make(map[string]*models.TeamTotals)}
}

// SaveTickets discards previous totals and folds the given tickets in order.
func (m *MemoryTeamTotalsRepository) SaveTickets(_ context.Context, tickets []models.ParsedTicket) error {
	m.totals = make(map[string]*models.TeamTotals)
	m.order = m.order[:0]

	for _, t := range tickets {
		entry, ok := m.totals[t.Team]
		if !ok {
			entry = &models.TeamTotals{Team: t.Team, FirstSeen: t.Seq}
			m.totals[t.Team] = entry
			m.order = append(m.order, t.Team)
		}
		entry.TicketCount++
		entry.SumTimeToResolve += t.TimeToResolve
		entry.SumSatisfaction += t.Satisfaction
	}
	return nil
}

// GetTeamTotals returns the totals in first-appearance order.
func (m *MemoryTeamTotalsRepository) GetTeamTotals(_ context.Context) ([]models.TeamTotals, error) {
	out := make([]models.TeamTotals, 0, len(m.order))
	for _, team := range m.order {
		out = append(out, *m.totals[team])
	}
	return out, nil
}
