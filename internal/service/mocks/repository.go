package mocks

import (
	"context"
	"errors"

	"github.com/godilite/team-summary/internal/repository/models"
)

// MockTeamTotalsRepository is a mock implementation of the TeamTotalsRepository
// interface for testing the service layer.
type MockTeamTotalsRepository struct {
	SaveTicketsFunc   func(ctx context.Context, tickets []models.ParsedTicket) error
	GetTeamTotalsFunc func(ctx context.Context) ([]models.TeamTotals, error)
}

// SaveTickets implements the TeamTotalsRepository interface
func (m *MockTeamTotalsRepository) SaveTickets(ctx context.Context, tickets []models.ParsedTicket) error {
	if m.SaveTicketsFunc != nil {
		return m.SaveTicketsFunc(ctx, tickets)
	}
	return nil
}

// GetTeamTotals implements the TeamTotalsRepository interface
func (m *MockTeamTotalsRepository) GetTeamTotals(ctx context.Context) ([]models.TeamTotals, error) {
	if m.GetTeamTotalsFunc != nil {
		return m.GetTeamTotalsFunc(ctx)
	}
	return nil, errors.New("GetTeamTotalsFunc not implemented")
}
