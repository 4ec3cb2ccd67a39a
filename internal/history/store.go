package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/filumlabs/painpoint-agent/internal/db"
	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("analysis record not found")

// Store provides CRUD operations for analysis records.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save persists one completed analysis and returns the generated record ID.
func (s *Store) Save(ctx context.Context, in *painpoint.Input, out *engine.Output) (string, error) {
	id := uuid.New().String()

	inputJSON, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("marshalling input: %w", err)
	}
	resultJSON, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshalling result: %w", err)
	}

	var industry, companySize, urgency string
	if c := in.PainPoint.Context; c != nil {
		industry = c.Industry
		companySize = string(c.CompanySize)
		urgency = string(c.Urgency)
	}

	var topSolution string
	var topScore float64
	if len(out.Solutions) > 0 {
		topSolution = out.Solutions[0].Name
		topScore = out.Solutions[0].RelevanceScore
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (
			id, description, industry, company_size, urgency,
			input_json, result_json, solution_count, top_solution, top_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		in.PainPoint.Description,
		industry,
		companySize,
		urgency,
		string(inputJSON),
		string(resultJSON),
		len(out.Solutions),
		topSolution,
		topScore,
	)
	if err != nil {
		return "", fmt.Errorf("inserting analysis record: %w", err)
	}
	return id, nil
}

// GetByID retrieves a single record with its full payloads.
func (s *Store) GetByID(ctx context.Context, id string) (*Detail, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, description, industry, company_size, urgency,
		       solution_count, top_solution, top_score, input_json, result_json
		FROM analyses WHERE id = ?`, id)

	var d Detail
	var ts, input, result string
	err := row.Scan(
		&d.ID, &ts, &d.Description, &d.Industry, &d.CompanySize, &d.Urgency,
		&d.SolutionCount, &d.TopSolution, &d.TopScore, &input, &result,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading analysis record: %w", err)
	}

	d.CreatedAt = parseTimestamp(ts)
	d.Input = []byte(input)
	d.Result = []byte(result)
	return &d, nil
}

// QueryFilter controls which records List returns.
type QueryFilter struct {
	Industry string
	Urgency  string
	Since    *time.Time
	Limit    int
	Offset   int
}

// List returns record summaries matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter QueryFilter) ([]Record, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Industry != "" {
		clauses = append(clauses, "industry = ?")
		args = append(args, filter.Industry)
	}
	if filter.Urgency != "" {
		clauses = append(clauses, "urgency = ?")
		args = append(args, filter.Urgency)
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := `SELECT id, created_at, description, industry, company_size, urgency,
		solution_count, top_solution, top_score FROM analyses`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying analysis records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var ts string
		if err := rows.Scan(
			&rec.ID, &ts, &rec.Description, &rec.Industry, &rec.CompanySize,
			&rec.Urgency, &rec.SolutionCount, &rec.TopSolution, &rec.TopScore,
		); err != nil {
			return nil, err
		}
		rec.CreatedAt = parseTimestamp(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteBefore removes records older than the given time. Returns the number
// of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM analyses WHERE created_at < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old analysis records: %w", err)
	}
	return res.RowsAffected()
}

func parseTimestamp(ts string) time.Time {
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05Z", ts); err == nil {
		return t
	}
	return time.Time{}
}
