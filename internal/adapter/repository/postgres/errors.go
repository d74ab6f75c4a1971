package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/simaogato/potshare-backend/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for a duplicate key
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// parseUUIDs converts the text form of a UUID array into ids
func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse uuid %q: %w", v, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseMoney converts a NUMERIC column scanned as text into cents
func parseMoney(value string) (domain.Money, error) {
	m, err := domain.ParseMoney(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount %q: %w", value, err)
	}
	return m, nil
}
