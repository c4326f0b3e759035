package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/octobees/contact-site/api/internal/database"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubAcquirer struct {
	conn *stubConn
	err  error
}

func (s *stubAcquirer) Acquire(ctx context.Context) (database.Conn, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.conn.acquired++
	return s.conn, nil
}

type stubConn struct {
	queryRowFunc  func(ctx context.Context, query string, args ...any) pgx.Row
	queryFunc     func(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	sendBatchFunc func(ctx context.Context, b *pgx.Batch) pgx.BatchResults

	acquired int
	released int
}

func (s *stubConn) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if s.queryRowFunc != nil {
		return s.queryRowFunc(ctx, query, args...)
	}
	return &stubRow{scan: func(dest ...any) error { return nil }}
}

func (s *stubConn) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if s.queryFunc != nil {
		return s.queryFunc(ctx, query, args...)
	}
	return nil, errors.New("query not implemented")
}

func (s *stubConn) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	if s.sendBatchFunc != nil {
		return s.sendBatchFunc(ctx, b)
	}
	return &stubBatchResults{err: errors.New("batch not implemented")}
}

func (s *stubConn) Release() { s.released++ }

type stubRow struct {
	scan func(dest ...any) error
}

func (s *stubRow) Scan(dest ...any) error {
	if s.scan != nil {
		return s.scan(dest...)
	}
	return nil
}

type stubRows struct {
	scans  []func(dest ...any) error
	idx    int
	err    error
	closed bool
}

func (s *stubRows) Close() { s.closed = true }

func (s *stubRows) Err() error { return s.err }

func (s *stubRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (s *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (s *stubRows) Next() bool {
	if s.err != nil {
		return false
	}
	if s.idx < len(s.scans) {
		s.idx++
		return true
	}
	return false
}

func (s *stubRows) Scan(dest ...any) error {
	if s.idx == 0 || s.idx > len(s.scans) {
		return errors.New("scan called out of order")
	}
	return s.scans[s.idx-1](dest...)
}

func (s *stubRows) Values() ([]any, error) { return nil, nil }

func (s *stubRows) RawValues() [][]byte { return nil }

func (s *stubRows) Conn() *pgx.Conn { return nil }

type stubBatchResults struct {
	rows     []func(dest ...any) error
	idx      int
	err      error
	closeErr error
	closed   bool
}

func (s *stubBatchResults) Exec() (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("exec not implemented")
}

func (s *stubBatchResults) Query() (pgx.Rows, error) {
	return nil, errors.New("query not implemented")
}

func (s *stubBatchResults) QueryRow() pgx.Row {
	if s.err != nil {
		err := s.err
		return &stubRow{scan: func(dest ...any) error { return err }}
	}
	if s.idx >= len(s.rows) {
		return &stubRow{scan: func(dest ...any) error { return errors.New("no more batch results") }}
	}
	scan := s.rows[s.idx]
	s.idx++
	return &stubRow{scan: scan}
}

func (s *stubBatchResults) Close() error {
	s.closed = true
	return s.closeErr
}
