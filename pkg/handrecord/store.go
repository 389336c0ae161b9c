package handrecord

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"handscribe-server/pkg/db"

	"github.com/google/uuid"
)

// ErrRecordNotFound happens when no hand with the provided UUID exists
var ErrRecordNotFound = errors.New("hand record not found")

const handColumns = `
hands.uuid,
hands.record,
hands.created,
hands.updated`

// SavedRecord is a persisted hand record
type SavedRecord struct {
	UUID    string    `json:"uuid"`
	Record  *Record   `json:"record"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Save persists a settled record and returns the stored row
func Save(ctx context.Context, record *Record) (*SavedRecord, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	u := uuid.New().String()
	const query = `
INSERT INTO hands (uuid, record)
VALUES ($1, $2)
RETURNING created, updated`

	var created, updated time.Time
	row := db.Instance().QueryRowContext(ctx, query, u, payload)
	if err := row.Scan(&created, &updated); err != nil {
		return nil, err
	}

	return &SavedRecord{
		UUID:    u,
		Record:  record,
		Created: created,
		Updated: updated,
	}, nil
}

// Get loads a saved hand by its UUID
func Get(ctx context.Context, id string) (*SavedRecord, error) {
	const query = `SELECT ` + handColumns + ` FROM hands WHERE uuid = $1`

	saved, err := savedRecordByRow(db.Instance().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}

	return saved, err
}

// List returns saved hands, most recent first
func List(ctx context.Context, start int64, rows int) ([]*SavedRecord, error) {
	const query = `
SELECT ` + handColumns + `
FROM hands
ORDER BY created DESC, uuid
OFFSET $1 LIMIT $2`

	result, err := db.Instance().QueryContext(ctx, query, start, rows)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	records := make([]*SavedRecord, 0)
	for result.Next() {
		saved, err := savedRecordByRow(result)
		if err != nil {
			return nil, err
		}

		records = append(records, saved)
	}

	if err := result.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete removes a saved hand
func Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM hands WHERE uuid = $1`

	result, err := db.Instance().ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func savedRecordByRow(row db.Scanner) (*SavedRecord, error) {
	var saved SavedRecord
	var payload []byte
	if err := row.Scan(&saved.UUID, &payload, &saved.Created, &saved.Updated); err != nil {
		return nil, err
	}

	saved.Record = &Record{}
	if err := json.Unmarshal(payload, saved.Record); err != nil {
		return nil, err
	}

	return &saved, nil
}
