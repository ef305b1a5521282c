package service

// TeamSummary is one row of the summary table. Averages are NaN when any of the
// team's tickets carried a non-numeric value.
type TeamSummary struct {
	Team                string
	TicketCount         int
	AvgMinutesToResolve float64
	AvgSatisfaction     float64
}

// SummaryTable is ordered by ticket count, highest first.
type SummaryTable []TeamSummary

// TotalTickets returns the number of tickets the table was built from.
func (t SummaryTable) TotalTickets() int {
	n := 0
	for _, row := range t {
		n += row.TicketCount
	}
	return n
}
