package repository_test

import (
	"context"
	"database/sql"
	"math"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/godilite/team-summary/internal/repository"
	"github.com/godilite/team-summary/internal/repository/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })
	return db
}

func seedTickets() []models.ParsedTicket {
	return []models.ParsedTicket{
		{Seq: 0, Team: "Billing", TimeToResolve: 60, Satisfaction: 5},
		{Seq: 1, Team: "Network", TimeToResolve: 30, Satisfaction: 4},
		{Seq: 2, Team: "Billing", TimeToResolve: 120, Satisfaction: 3},
		{Seq: 3, Team: "Hardware", TimeToResolve: 15, Satisfaction: math.NaN()},
		{Seq: 4, Team: "Network", TimeToResolve: 45, Satisfaction: 2},
		{Seq: 5, Team: "billing", TimeToResolve: 10, Satisfaction: 1},
	}
}

func TestTicketRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewTicketRepository(db)

	require.NoError(t, repo.SaveTickets(ctx, seedTickets()))

	t.Run("GetTeamTotals groups by exact team name", func(t *testing.T) {
		results, err := repo.GetTeamTotals(ctx)
		require.NoError(t, err)
		require.Len(t, results, 4)

		require.Equal(t, "Billing", results[0].Team)
		require.Equal(t, 2, results[0].TicketCount)
		require.Equal(t, 0, results[0].FirstSeen)
		require.Equal(t, 180.0, results[0].SumTimeToResolve)
		require.Equal(t, 8.0, results[0].SumSatisfaction)

		require.Equal(t, "Network", results[1].Team)
		require.Equal(t, 2, results[1].TicketCount)

		require.Equal(t, "Hardware", results[2].Team)
		require.Equal(t, "billing", results[3].Team)
	})

	t.Run("NULL values poison the sum", func(t *testing.T) {
		results, err := repo.GetTeamTotals(ctx)
		require.NoError(t, err)

		hw := results[2]
		require.Equal(t, 15.0, hw.SumTimeToResolve)
		require.True(t, math.IsNaN(hw.SumSatisfaction))
	})

	t.Run("SaveTickets replaces previous rows", func(t *testing.T) {
		require.NoError(t, repo.SaveTickets(ctx, []models.ParsedTicket{
			{Seq: 0, Team: "Solo", TimeToResolve: 1, Satisfaction: 1},
		}))

		results, err := repo.GetTeamTotals(ctx)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "Solo", results[0].Team)
	})

	t.Run("empty input yields no totals", func(t *testing.T) {
		require.NoError(t, repo.SaveTickets(ctx, nil))

		results, err := repo.GetTeamTotals(ctx)
		require.NoError(t, err)
		require.Empty(t, results)
	})
}

func TestTicketRepository_GetTeamTotalsWithoutTable(t *testing.T) {
	repo := repository.NewTicketRepository(setupTestDB(t))

	_, err := repo.GetTeamTotals(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "query GetTeamTotals")
}

func TestMemoryTeamTotalsRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryTeamTotalsRepository()

	require.NoError(t, repo.SaveTickets(ctx, seedTickets()))

	results, err := repo.GetTeamTotals(ctx)
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.Equal(t, []string{"Billing", "Network", "Hardware", "billing"}, []string{
		results[0].Team, results[1].Team, results[2].Team, results[3].Team,
	})
	require.Equal(t, 2, results[1].TicketCount)
	require.Equal(t, 75.0, results[1].SumTimeToResolve)
	require.Equal(t, 1, results[1].FirstSeen)
	require.True(t, math.IsNaN(results[2].SumSatisfaction))

	require.NoError(t, repo.SaveTickets(ctx, nil))
	results, err = repo.GetTeamTotals(ctx)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestRepositoriesAgree(t *testing.T) {
	ctx := context.Background()
	sqlRepo := repository.NewTicketRepository(setupTestDB(t))
	memRepo := repository.NewMemoryTeamTotalsRepository()

	tickets := []models.ParsedTicket{
		{Seq: 0, Team: "A", TimeToResolve: 60, Satisfaction: 5},
		{Seq: 1, Team: "B", TimeToResolve: 30, Satisfaction: 4},
		{Seq: 2, Team: "A", TimeToResolve: 120, Satisfaction: 3},
		{Seq: 3, Team: "C", TimeToResolve: 90, Satisfaction: 2},
	}
	require.NoError(t, sqlRepo.SaveTickets(ctx, tickets))
	require.NoError(t, memRepo.SaveTickets(ctx, tickets))

	fromSQL, err := sqlRepo.GetTeamTotals(ctx)
	require.NoError(t, err)
	fromMem, err := memRepo.GetTeamTotals(ctx)
	require.NoError(t, err)

	// Only the SQL engine orders by count; compare as sets keyed by team.
	byTeam := make(map[string]models.TeamTotals, len(fromMem))
	for _, tt := range fromMem {
		byTeam[tt.Team] = tt
	}
	require.Len(t, fromSQL, len(fromMem))
	for _, tt := range fromSQL {
		require.Equal(t, byTeam[tt.Team], tt)
	}
}
