package models

import (
	"bytes"
	"encoding/json"
)

// Ticket is one support case as it appears in the input file.
type Ticket struct {
	TicketID                   string      `json:"ticket_id"`
	TicketCreatedAt            string      `json:"ticket_created_at"`
	TicketResolvedAt           string      `json:"ticket_resolved_at"`
	TimeToResolve              NumericText `json:"time_to_resolve"`
	// A missing team decodes to "" and is grouped and rendered as an empty name.
	AssignedTeam               string      `json:"assigned_team"`
	TicketCategory             string      `json:"ticket_category"`
	TicketPriority             string      `json:"ticket_priority"`
	ResolutionNotes            string      `json:"resolution_notes"`
	CustomerSatisfactionRating NumericText `json:"customer_satisfaction_rating"`
}

// NumericText holds the raw text of a field that is expected to encode a
// number. It accepts JSON strings, numbers and null.
type NumericText string

func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	default:
		*n = NumericText(data)
		return nil
	}
}

// ParsedTicket is a ticket reduced to the values aggregation needs.
// Invalid numeric fields are NaN.
type ParsedTicket struct {
	Seq           int
	Team          string
	TimeToResolve float64
	Satisfaction  float64
}

// TeamTotals are the running sums for one team.
type TeamTotals struct {
	Team             string
	FirstSeen        int
	TicketCount      int
	SumTimeToResolve float64
	SumSatisfaction  float64
}
