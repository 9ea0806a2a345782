package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/artpar/varmsg/domain/msgtype"
	"github.com/artpar/varmsg/ports"
)

// SchemaStore implements ports.SchemaStore using SQLite.
type SchemaStore struct {
	db *DB
}

// NewSchemaStore creates a new SQLite schema store.
func NewSchemaStore(db *DB) *SchemaStore {
	return &SchemaStore{db: db}
}

// Save stores a record, replacing any record with the same data type.
func (s *SchemaStore) Save(ctx context.Context, rec msgtype.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO schemas (data_type, id, md5_sum, definition, resolved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(data_type) DO UPDATE SET
			id = excluded.id,
			md5_sum = excluded.md5_sum,
			definition = excluded.definition,
			resolved_at = excluded.resolved_at
	`, rec.Type.DataType, rec.ID, rec.Type.MD5Sum, rec.Type.Definition, rec.ResolvedAt)
	return err
}

// Get retrieves the record for a data type.
func (s *SchemaStore) Get(ctx context.Context, dataType string) (msgtype.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT data_type, id, md5_sum, definition, resolved_at
		FROM schemas
		WHERE data_type = ?
	`, dataType)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return msgtype.Record{}, ports.ErrNotFound
	}
	return rec, err
}

// List returns all records ordered by data type.
func (s *SchemaStore) List(ctx context.Context) ([]msgtype.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT data_type, id, md5_sum, definition, resolved_at
		FROM schemas
		ORDER BY data_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []msgtype.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Delete removes the record for a data type.
func (s *SchemaStore) Delete(ctx context.Context, dataType string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM schemas WHERE data_type = ?
	`, dataType)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ports.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (msgtype.Record, error) {
	var rec msgtype.Record
	err := s.Scan(&rec.Type.DataType, &rec.ID, &rec.Type.MD5Sum,
		&rec.Type.Definition, &rec.ResolvedAt)
	return rec, err
}
