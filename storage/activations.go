package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Outcome is how a hotkey activation ended
type Outcome string

const (
	OutcomeCopied    Outcome = "copied"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// Activation is one hotkey press. It deliberately carries no username,
// list index or secret.
type Activation struct {
	ID           int64
	Timestamp    time.Time
	Outcome      Outcome
	ErrorMessage string
}

// Summary counts activations by outcome
type Summary struct {
	Total     int
	Copied    int
	Cancelled int
	Failed    int
}

// SaveActivation saves an activation to the database. A zero Timestamp is set to now.
func (db *DB) SaveActivation(a *Activation) error {
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	var errorMessage sql.NullString
	if a.ErrorMessage != "" {
		errorMessage = sql.NullString{String: a.ErrorMessage, Valid: true}
	}

	result, err := db.conn.Exec(
		`INSERT INTO activations (timestamp, outcome, error_message) VALUES (?, ?, ?)`,
		a.Timestamp.UTC(), string(a.Outcome), errorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to save activation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	a.ID = id
	return nil
}

// GetActivations retrieves activations newest first with pagination
func (db *DB) GetActivations(limit, offset int) ([]Activation, error) {
	rows, err := db.conn.Query(`
		SELECT id, timestamp, outcome, error_message
		FROM activations
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query activations: %w", err)
	}
	defer rows.Close()

	var activations []Activation
	for rows.Next() {
		var a Activation
		var outcome string
		var errorMessage sql.NullString

		if err := rows.Scan(&a.ID, &a.Timestamp, &outcome, &errorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan activation: %w", err)
		}

		a.Outcome = Outcome(outcome)
		if errorMessage.Valid {
			a.ErrorMessage = errorMessage.String
		}
		activations = append(activations, a)
	}

	return activations, rows.Err()
}

// GetSummary counts activations recorded at or after since. A zero since counts everything.
func (db *DB) GetSummary(since time.Time) (*Summary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = 'copied' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'cancelled' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'failed' THEN 1 ELSE 0 END), 0)
		FROM activations
		WHERE timestamp >= ?
	`

	var s Summary
	err := db.conn.QueryRow(query, since.UTC()).Scan(&s.Total, &s.Copied, &s.Cancelled, &s.Failed)
	if err != nil {
		return nil, fmt.Errorf("failed to query activation summary: %w", err)
	}

	return &s, nil
}
