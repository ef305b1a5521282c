package service

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/godilite/team-summary/internal/repository"
	"github.com/godilite/team-summary/internal/repository/models"
	dbbuilder "github.com/godilite/team-summary/pkg/database"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func benchTickets(n int) []models.Ticket {
	tickets := make([]models.Ticket, n)
	for i := range tickets {
		tickets[i] = models.Ticket{
			TicketID:                   fmt.Sprintf("T-%d", i),
			AssignedTeam:               fmt.Sprintf("team-%d", i%12),
			TimeToResolve:              models.NumericText(strconv.Itoa(15 + i%240)),
			CustomerSatisfactionRating: models.NumericText(strconv.Itoa(1 + i%5)),
		}
	}
	return tickets
}

func BenchmarkSummarizeMemory(b *testing.B) {
	svc := NewSummaryService(repository.NewMemoryTeamTotalsRepository(), zap.NewNop())
	tickets := benchTickets(5000)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = svc.Summarize(context.Background(), tickets)
	}
}

func BenchmarkSummarizeSQLite(b *testing.B) {
	db, err := dbbuilder.New(
		dbbuilder.WithDriver("sqlite3"),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	if err != nil {
		b.Fatalf("failed to create db pool via builder: %v", err)
	}
	b.Cleanup(func() { db.Close() })

	svc := NewSummaryService(repository.NewTicketRepository(db), zap.NewNop())
	tickets := benchTickets(5000)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = svc.Summarize(context.Background(), tickets)
	}
}
