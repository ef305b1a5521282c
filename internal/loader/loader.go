// Package loader reads ticket records from a JSON file.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/godilite/team-summary/internal/repository/models"
	"go.uber.org/zap"
)

// Loader reads the ticket file. Any failure is logged and recovered as an
// empty ticket list so the rest of the pipeline still runs.
type Loader struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("loader")}
}

// Load returns the tickets in file order, or an empty slice if the file cannot
// be read or decoded.
func (l *Loader) Load(path string) []models.Ticket {
	tickets, err := ReadTickets(path)
	if err != nil {
		l.logger.Error("error reading or parsing ticket file",
			zap.String("path", path),
			zap.Error(err))
		return []models.Ticket{}
	}

	l.logger.Debug("tickets loaded",
		zap.String("path", path),
		zap.Int("count", len(tickets)))
	return tickets
}

// ReadTickets decodes the JSON array at path.
func ReadTickets(path string) ([]models.Ticket, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var tickets []models.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if tickets == nil {
		// A literal null decodes without error.
		return nil, fmt.Errorf("decode %s: top-level value is not an array", path)
	}
	return tickets, nil
}
