package service

import (
	"context"

	"github.com/godilite/team-summary/internal/repository/models"
)

// TeamTotalsRepository folds parsed tickets into per-team totals.
type TeamTotalsRepository interface {
	SaveTickets(ctx context.Context, tickets []models.ParsedTicket) error
	GetTeamTotals(ctx context.Context) ([]models.TeamTotals, error)
}
