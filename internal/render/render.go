// Package render formats a team summary table as an HTML email message.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/godilite/team-summary/internal/service"
)

const Subject = "Team Performance Summary"

const bodyTemplate = `
    <h1>{{.Title}}</h1>
    <p>Below is the summary of the performance for each team:</p>
    <table border="1" style="border-collapse: collapse; width: 100%; margin-top: 20px;">
      <thead>
        <tr>
          <th>Team</th>
          <th>Total Tickets</th>
          <th>Avg Time to Resolve (hrs)</th>
          <th>Avg Customer Satisfaction</th>
        </tr>
      </thead>
      <tbody>{{range .Rows}}
        <tr>
          <td>{{.Team}}</td>
          <td>{{.TicketCount}}</td>
          <td>{{.AvgHoursToResolve}}</td>
          <td>{{.AvgSatisfaction}}</td>
        </tr>{{end}}
      </tbody>
    </table>
`

var body = template.Must(template.New("body").Parse(bodyTemplate))

// Message is a rendered email: a subject line and an HTML body.
type Message struct {
	Subject string
	Body    string
}

type row struct {
	Team              string
	TicketCount       int
	AvgHoursToResolve string
	AvgSatisfaction   string
}

// Render builds the message for table. Team names are HTML-escaped.
func Render(table service.SummaryTable) (Message, error) {
	rows := make([]row, len(table))
	for i, t := range table {
		rows[i] = row{
			Team:              t.Team,
			TicketCount:       t.TicketCount,
			AvgHoursToResolve: FormatFixed2(t.AvgMinutesToResolve / 60),
			AvgSatisfaction:   FormatFixed2(t.AvgSatisfaction),
		}
	}

	var buf bytes.Buffer
	err := body.Execute(&buf, struct {
		Title string
		Rows  []row
	}{Title: Subject, Rows: rows})
	if err != nil {
		return Message{}, fmt.Errorf("render body: %w", err)
	}

	return Message{Subject: Subject, Body: buf.String()}, nil
}

// FormatFixed2 formats v with exactly two decimals. An exact tie rounds away
// from zero, and non-finite values are spelled NaN, Infinity and -Infinity.
func FormatFixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// Drops the sign of negative zero.
		return "0.00"
	}

	// FormatFloat rounds the exact binary value to nearest, which already
	// agrees everywhere except on an exact half, where it picks the even digit.
	scaled := new(big.Float).SetPrec(128).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, big.NewFloat(100))
	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(scaled, new(big.Float).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	digits := whole.Add(whole, big.NewInt(1)).String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if v < 0 {
		out = "-" + out
	}
	return out
}
