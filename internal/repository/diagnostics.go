package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/octobees/contact-site/api/internal/database"
	"github.com/octobees/contact-site/api/internal/entity"
	"github.com/octobees/contact-site/api/internal/logging"
)

// DiagnosticsRepository exposes a read-only view over the contacts table and its schema.
type DiagnosticsRepository interface {
	Snapshot(ctx context.Context) (entity.DatabaseSnapshot, error)
}

// PGXDiagnosticsRepository implements DiagnosticsRepository with pgx.
type PGXDiagnosticsRepository struct {
	db     database.Acquirer
	logger *slog.Logger
}

var _ DiagnosticsRepository = (*PGXDiagnosticsRepository)(nil)

// NewPGXDiagnosticsRepository instantiates a diagnostics repository.
func NewPGXDiagnosticsRepository(db database.Acquirer, logger *slog.Logger) *PGXDiagnosticsRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PGXDiagnosticsRepository{db: db, logger: logger}
}

const selectContactDetailsSQL = `
        SELECT id, name, email, company, message, created_at, LENGTH(message) AS message_length
        FROM contacts
        ORDER BY created_at DESC, id DESC
    `

const statisticsSQL = `
        SELECT
            COUNT(*) AS total_contacts,
            COUNT(company) AS contacts_with_company,
            MIN(created_at) AS first_contact,
            MAX(created_at) AS latest_contact
        FROM contacts
    `

const columnMetadataSQL = `
        SELECT column_name::text, data_type::text, is_nullable::text
        FROM information_schema.columns
        WHERE table_schema = current_schema() AND table_name = 'contacts'
        ORDER BY ordinal_position
    `

// Snapshot reads contacts with their message length, the table statistics and
// the column metadata over a single pooled connection. The first failing
// query aborts the read.
func (r *PGXDiagnosticsRepository) Snapshot(ctx context.Context) (entity.DatabaseSnapshot, error) {
	logger := logging.FromContext(ctx, r.logger)

	conn, err := acquireConn(ctx, r.db, logger, "database snapshot")
	if err != nil {
		return entity.DatabaseSnapshot{}, err
	}
	defer conn.Release()

	contacts, err := contactDetails(ctx, conn)
	if err != nil {
		logger.Error("list contact details failed", "error", err)
		return entity.DatabaseSnapshot{}, fmt.Errorf("%w: list contact details: %w", ErrPersistence, err)
	}

	stats, err := statistics(ctx, conn)
	if err != nil {
		logger.Error("contact statistics failed", "error", err)
		return entity.DatabaseSnapshot{}, fmt.Errorf("%w: contact statistics: %w", ErrPersistence, err)
	}

	columns, err := columnMetadata(ctx, conn)
	if err != nil {
		logger.Error("column metadata failed", "error", err)
		return entity.DatabaseSnapshot{}, fmt.Errorf("%w: column metadata: %w", ErrPersistence, err)
	}

	return entity.DatabaseSnapshot{
		Contacts:       contacts,
		Statistics:     stats,
		TableStructure: columns,
	}, nil
}

func contactDetails(ctx context.Context, conn database.Conn) ([]entity.ContactDetail, error) {
	rows, err := conn.Query(ctx, selectContactDetailsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]entity.ContactDetail, 0)
	for rows.Next() {
		var detail entity.ContactDetail
		if err := scanContact(rows, &detail.Contact, &detail.MessageLength); err != nil {
			return nil, fmt.Errorf("scan contact detail row: %w", err)
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}

func statistics(ctx context.Context, conn database.Conn) (entity.DatabaseStatistics, error) {
	var (
		stats         entity.DatabaseStatistics
		first, latest sql.NullTime
	)
	if err := conn.QueryRow(ctx, statisticsSQL).Scan(&stats.TotalContacts, &stats.ContactsWithCompany, &first, &latest); err != nil {
		return entity.DatabaseStatistics{}, err
	}
	if first.Valid {
		stats.FirstContact = &first.Time
	}
	if latest.Valid {
		stats.LatestContact = &latest.Time
	}
	return stats, nil
}

func columnMetadata(ctx context.Context, conn database.Conn) ([]entity.ColumnDescriptor, error) {
	rows, err := conn.Query(ctx, columnMetadataSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make([]entity.ColumnDescriptor, 0)
	for rows.Next() {
		var column entity.ColumnDescriptor
		if err := rows.Scan(&column.ColumnName, &column.DataType, &column.IsNullable); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		columns = append(columns, column)
	}
	return columns, rows.Err()
}
