package analysis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLStore persists essays and analysis records in sqlite or postgres.
// Structured fields (composite, repetition, claims) are stored as JSON
// columns, matching how the rest of the schema handles nested payloads.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutEssay(ctx context.Context, e Essay) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO essays (id, user_id, kind, title, body, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, body=EXCLUDED.body`,
		e.ID, e.UserID, e.Kind, e.Title, e.Body, e.CreatedAt)
	return err
}

func (s *SQLStore) GetEssay(ctx context.Context, id string) (Essay, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, kind, title, body, created_at FROM essays WHERE id=$1`, id)
	var e Essay
	if err := row.Scan(&e.ID, &e.UserID, &e.Kind, &e.Title, &e.Body, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Essay{}, ErrEssayNotFound
		}
		return Essay{}, err
	}
	return e, nil
}

func (s *SQLStore) ListEssaysByUser(ctx context.Context, userID string) ([]Essay, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, kind, title, body, created_at FROM essays
		 WHERE user_id=$1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Essay{}
	for rows.Next() {
		var e Essay
		if err := rows.Scan(&e.ID, &e.UserID, &e.Kind, &e.Title, &e.Body, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type recordPayload struct {
	Composite  json.RawMessage  `json:"composite"`
	Repetition []RepetitionFlag `json:"repetition,omitempty"`
	Claims     []ClaimCheck     `json:"claims,omitempty"`
}

func (s *SQLStore) PutRecord(ctx context.Context, rec Record) error {
	comp, err := json.Marshal(rec.Composite)
	if err != nil {
		return fmt.Errorf("encode composite: %w", err)
	}
	payload, err := json.Marshal(recordPayload{
		Composite:  comp,
		Repetition: rec.Repetition,
		Claims:     rec.Claims,
	})
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, essay_id, user_id, rubric_version, final_score, payload_json, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.EssayID, rec.UserID, rec.RubricVersion, rec.Composite.FinalScore,
		string(payload), rec.CreatedAt)
	return err
}

func (s *SQLStore) GetRecord(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, essay_id, user_id, rubric_version, payload_json, created_at
		 FROM analyses WHERE id=$1`, id)
	return scanRecord(row)
}

func (s *SQLStore) ListRecordsByEssay(ctx context.Context, essayID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, essay_id, user_id, rubric_version, payload_json, created_at
		 FROM analyses WHERE essay_id=$1 ORDER BY created_at, id`, essayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var payload string
	if err := row.Scan(&rec.ID, &rec.EssayID, &rec.UserID, &rec.RubricVersion, &payload, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrRecordNotFound
		}
		return Record{}, err
	}
	var p recordPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return Record{}, fmt.Errorf("decode record %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal(p.Composite, &rec.Composite); err != nil {
		return Record{}, fmt.Errorf("decode composite %s: %w", rec.ID, err)
	}
	rec.Repetition = p.Repetition
	rec.Claims = p.Claims
	return rec, nil
}
