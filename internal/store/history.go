// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"slidepress/internal/models"
)

// HistoryStore persists generated presentations for signed-in users.
// The full normalized presentation is stored as a JSONB payload, so a
// history row can be previewed and re-exported without regenerating.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore creates a new HistoryStore with the given database connection.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// HistoryEntry is one saved presentation in a user's history list.
type HistoryEntry struct {
	Presentation *models.Presentation
	UserID       uuid.UUID
}

// Save stores a presentation for a user. The presentation's own ID is
// the row key, so re-saving the same presentation is a conflict, not a
// duplicate.
func (s *HistoryStore) Save(userID uuid.UUID, p *models.Presentation) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode presentation: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO history (id, user_id, topic, style, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, userID, p.Topic, string(p.Style), payload, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// ListByUser returns a user's saved presentations, newest first.
func (s *HistoryStore) ListByUser(userID uuid.UUID) ([]*models.Presentation, error) {
	rows, err := s.db.Query(`
		SELECT payload FROM history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var out []*models.Presentation
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		var p models.Presentation
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("decode history payload: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// FindByID retrieves one saved presentation, scoped to its owner.
// Returns nil if the row does not exist or belongs to someone else.
func (s *HistoryStore) FindByID(id, userID uuid.UUID) (*models.Presentation, error) {
	var payload []byte
	err := s.db.QueryRow(`
		SELECT payload FROM history WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}

	var p models.Presentation
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode history payload: %w", err)
	}
	return &p, nil
}

// Delete removes a saved presentation, scoped to its owner. Deleting a
// row that is already gone succeeds; the operation is idempotent.
func (s *HistoryStore) Delete(id, userID uuid.UUID) error {
	_, err := s.db.Exec(`
		DELETE FROM history WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}
