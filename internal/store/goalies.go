package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/baxromumarov/goalie-stats/internal/goalie"
)

// Filter narrows goalie queries. Empty fields match everything; Player is a
// case-insensitive substring match.
type Filter struct {
	Source     string
	SeasonType string
	Year       string
	Player     string
	Limit      int
	Offset     int
}

// PartitionCount is the number of stored rows for one partition key.
type PartitionCount struct {
	Source     string `json:"source"`
	SeasonType string `json:"season_type"`
	Year       string `json:"year"`
	Rows       int64  `json:"rows"`
}

// Append writes records in one transaction with a single prepared insert.
// Any failure rolls the whole batch back. No deduplication is attempted, so
// loading the same partition twice stores its rows twice.
func (s *Store) Append(ctx context.Context, records []goalie.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrStoreWrite, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.insertSQL())
	if err != nil {
		return fmt.Errorf("%w: prepare: %w", ErrStoreWrite, err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Values()...); err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrStoreWrite, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrStoreWrite, err)
	}
	return nil
}

func (s *Store) ListGoalies(ctx context.Context, f Filter) ([]goalie.Record, error) {
	limit := clampLimit(f.Limit, 50, 500)
	offset := max(f.Offset, 0)

	where, args := s.where(f)
	query := fmt.Sprintf(`
SELECT id, created_at, %s
FROM %s%s
ORDER BY id
LIMIT %d OFFSET %d
`, strings.Join(goalie.ColumnNames(), ", "), s.table, where, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []goalie.Record
	for rows.Next() {
		var (
			rec       goalie.Record
			createdAt sql.NullString
		)
		dest := append([]any{&rec.ID, &createdAt}, rec.Pointers()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			rec.CreatedAt = createdAt.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Count(ctx context.Context, f Filter) (int64, error) {
	where, args := s.where(f)
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+s.table+where, args...).Scan(&n)
	return n, err
}

func (s *Store) PartitionCounts(ctx context.Context) ([]PartitionCount, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
SELECT source, season_type, year, COUNT(*)
FROM %s
GROUP BY source, season_type, year
ORDER BY source, season_type, year
`, s.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []PartitionCount
	for rows.Next() {
		var (
			pc                       PartitionCount
			source, seasonType, year sql.NullString
		)
		if err := rows.Scan(&source, &seasonType, &year, &pc.Rows); err != nil {
			return nil, err
		}
		pc.Source, pc.SeasonType, pc.Year = source.String, seasonType.String, year.String
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

func (s *Store) where(f Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, s.dialect.Placeholder(len(args))))
	}
	if f.Source != "" {
		add("source = %s", f.Source)
	}
	if f.SeasonType != "" {
		add("season_type = %s", f.SeasonType)
	}
	if f.Year != "" {
		add("year = %s", f.Year)
	}
	if p := strings.TrimSpace(f.Player); p != "" {
		add("LOWER(player_name) LIKE %s", "%"+strings.ToLower(p)+"%")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "\nWHERE " + strings.Join(conds, " AND "), args
}
