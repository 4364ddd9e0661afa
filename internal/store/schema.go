package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/baxromumarov/goalie-stats/internal/goalie"
)

// EnsureSchema creates the target table when it does not exist yet. It is
// safe to call on every run.
func (s *Store) EnsureSchema(ctx context.Context) error {
	exists, err := s.HasTable(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaCreation, err)
	}
	if exists {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, s.createTableSQL()); err != nil {
		return fmt.Errorf("%w: create table %s: %w", ErrSchemaCreation, s.table, err)
	}
	return nil
}

// HasTable reports whether the target table exists.
func (s *Store) HasTable(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, s.dialect.hasTable, s.table).Scan(&n); err != nil {
		return false, fmt.Errorf("probe table %s: %w", s.table, err)
	}
	return n > 0, nil
}

func (s *Store) createTableSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n    %s", s.table, s.dialect.idColumn)
	for _, c := range goalie.Columns {
		fmt.Fprintf(&b, ",\n    %s %s", c.Name, s.dialect.columnType(c))
	}
	fmt.Fprintf(&b, ",\n    %s\n)", s.dialect.createdAtColumn)
	return b.String()
}

// insertSQL lists every canonical column; id and created_at are left to the
// server defaults.
func (s *Store) insertSQL() string {
	names := goalie.ColumnNames()
	marks := make([]string, len(names))
	for i := range names {
		marks[i] = s.dialect.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.table, strings.Join(names, ", "), strings.Join(marks, ", "))
}
