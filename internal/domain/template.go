package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Occurrence defines how often a pot should be created from a template
type Occurrence string

const (
	OccurrenceOnce    Occurrence = "ONCE"
	OccurrenceDaily   Occurrence = "DAILY"
	OccurrenceWeekly  Occurrence = "WEEKLY"
	OccurrenceMonthly Occurrence = "MONTHLY"
	OccurrenceYearly  Occurrence = "YEARLY"
)

// PotTemplate describes a pot that is created repeatedly (e.g. monthly rent)
type PotTemplate struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	DefaultCurrencyID int
	Occurrence        Occurrence
	Participants      []uuid.UUID // Always contains the owner
	CreatedAt         time.Time
}

// Validate ensures the template adheres to domain rules
func (t *PotTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: template name cannot be empty", ErrInvalidInput)
	}

	if t.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: template must have an owner", ErrInvalidInput)
	}

	if t.DefaultCurrencyID <= 0 {
		return fmt.Errorf("%w: template must have a default currency", ErrInvalidInput)
	}

	switch t.Occurrence {
	case OccurrenceOnce, OccurrenceDaily, OccurrenceWeekly, OccurrenceMonthly, OccurrenceYearly:
	default:
		return fmt.Errorf("%w: unknown occurrence %q", ErrInvalidInput, t.Occurrence)
	}

	for _, id := range t.Participants {
		if id == t.OwnerID {
			return nil
		}
	}
	return fmt.Errorf("%w: template owner must be a participant", ErrInvalidInput)
}

// NextAfter returns the first time after last at which a new pot is due.
// ONCE templates are never due again, so ok is false.
func (o Occurrence) NextAfter(last time.Time) (next time.Time, ok bool) {
	switch o {
	case OccurrenceDaily:
		return last.AddDate(0, 0, 1), true
	case OccurrenceWeekly:
		return last.AddDate(0, 0, 7), true
	case OccurrenceMonthly:
		return last.AddDate(0, 1, 0), true
	case OccurrenceYearly:
		return last.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
