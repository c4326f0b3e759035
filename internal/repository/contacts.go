package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/octobees/contact-site/api/internal/database"
	"github.com/octobees/contact-site/api/internal/entity"
	"github.com/octobees/contact-site/api/internal/logging"
)

// ErrPersistence wraps every failure to read from or write to the contacts table.
var ErrPersistence = errors.New("persistence failure")

// ContactsRepository describes persistence operations for contacts.
type ContactsRepository interface {
	Save(ctx context.Context, contact entity.NewContact) (*entity.Contact, error)
	List(ctx context.Context) ([]entity.Contact, error)
	SeedTestContacts(ctx context.Context) ([]entity.Contact, error)
	TestConnection(ctx context.Context) bool
}

// PGXContactsRepository implements ContactsRepository with pgx.
type PGXContactsRepository struct {
	db     database.Acquirer
	logger *slog.Logger
}

var _ ContactsRepository = (*PGXContactsRepository)(nil)

// NewPGXContactsRepository instantiates a contacts repository.
func NewPGXContactsRepository(db database.Acquirer, logger *slog.Logger) *PGXContactsRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PGXContactsRepository{db: db, logger: logger}
}

const insertContactSQL = `
        INSERT INTO contacts (name, email, company, message, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id, created_at
    `

const selectContactsSQL = `
        SELECT id, name, email, company, message, created_at
        FROM contacts
        ORDER BY created_at DESC, id DESC
    `

// SeedContacts returns the fixed demo batch inserted by SeedTestContacts.
func SeedContacts() []entity.NewContact {
	techCorp := "TechCorp France"
	innovation := "Innovation Auto"
	return []entity.NewContact{
		{
			Name:    "Jean Dupont",
			Email:   "jean.dupont@test.com",
			Company: &techCorp,
			Message: "Intéressé par vos solutions d'électromobilité pour notre flotte de véhicules.",
		},
		{
			Name:    "Marie Martin",
			Email:   "marie.martin@innovation.fr",
			Company: &innovation,
			Message: "Demande d'information sur vos services de diagnostic et maintenance.",
		},
		{
			Name:    "Pierre Durand",
			Email:   "p.durand@email.com",
			Message: "Question sur l'architecture électronique de véhicules connectés.",
		},
	}
}

// Save inserts a contact and returns it with the generated id and created_at.
func (r *PGXContactsRepository) Save(ctx context.Context, in entity.NewContact) (*entity.Contact, error) {
	conn, err := r.acquire(ctx, "save contact")
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	contact := entity.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Company: nullableString(in.Company),
		Message: in.Message,
	}

	row := conn.QueryRow(ctx, insertContactSQL, contact.Name, contact.Email, contact.Company, contact.Message)
	if err := row.Scan(&contact.ID, &contact.CreatedAt); err != nil {
		r.log(ctx).Error("insert contact failed", "email", contact.Email, "error", err)
		return nil, fmt.Errorf("%w: insert contact: %w", ErrPersistence, err)
	}

	r.log(ctx).Info("contact saved", "id", contact.ID)
	return &contact, nil
}

// List returns all contacts, most recent first.
func (r *PGXContactsRepository) List(ctx context.Context) ([]entity.Contact, error) {
	conn, err := r.acquire(ctx, "list contacts")
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, selectContactsSQL)
	if err != nil {
		r.log(ctx).Error("list contacts failed", "error", err)
		return nil, fmt.Errorf("%w: list contacts: %w", ErrPersistence, err)
	}
	defer rows.Close()

	contacts := make([]entity.Contact, 0)
	for rows.Next() {
		var contact entity.Contact
		if err := scanContact(rows, &contact); err != nil {
			return nil, fmt.Errorf("%w: scan contact row: %w", ErrPersistence, err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		r.log(ctx).Error("iterate contacts failed", "error", err)
		return nil, fmt.Errorf("%w: iterate contacts: %w", ErrPersistence, err)
	}

	r.log(ctx).Info("contacts retrieved", "count", len(contacts))
	return contacts, nil
}

// SeedTestContacts inserts the demo batch in one round-trip. Every call adds new rows.
func (r *PGXContactsRepository) SeedTestContacts(ctx context.Context) ([]entity.Contact, error) {
	seeds := SeedContacts()

	conn, err := r.acquire(ctx, "seed test contacts")
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	batch := &pgx.Batch{}
	for _, seed := range seeds {
		batch.Queue(insertContactSQL, seed.Name, seed.Email, nullableString(seed.Company), seed.Message)
	}

	results := conn.SendBatch(ctx, batch)
	inserted := make([]entity.Contact, 0, len(seeds))
	var scanErr error
	for _, seed := range seeds {
		contact := entity.Contact{
			Name:    seed.Name,
			Email:   seed.Email,
			Company: nullableString(seed.Company),
			Message: seed.Message,
		}
		if scanErr = results.QueryRow().Scan(&contact.ID, &contact.CreatedAt); scanErr != nil {
			break
		}
		inserted = append(inserted, contact)
	}
	closeErr := results.Close()
	if err := errors.Join(scanErr, closeErr); err != nil {
		r.log(ctx).Error("seed test contacts failed", "error", err)
		return nil, fmt.Errorf("%w: seed test contacts: %w", ErrPersistence, err)
	}

	r.log(ctx).Info("test contacts seeded", "count", len(inserted))
	return inserted, nil
}

// TestConnection runs a trivial query and reports whether the store answered.
// Failures are logged, never returned.
func (r *PGXContactsRepository) TestConnection(ctx context.Context) bool {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		r.log(ctx).Warn("database connection failed", "error", err)
		return false
	}
	defer conn.Release()

	var now time.Time
	if err := conn.QueryRow(ctx, `SELECT NOW() AS current_time`).Scan(&now); err != nil {
		r.log(ctx).Warn("database connection failed", "error", err)
		return false
	}

	r.log(ctx).Debug("database connection successful", "current_time", now)
	return true
}

func (r *PGXContactsRepository) acquire(ctx context.Context, op string) (database.Conn, error) {
	return acquireConn(ctx, r.db, r.log(ctx), op)
}

func (r *PGXContactsRepository) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, r.logger)
}

func acquireConn(ctx context.Context, db database.Acquirer, logger *slog.Logger, op string) (database.Conn, error) {
	conn, err := db.Acquire(ctx)
	if err != nil {
		logger.Error("acquire connection failed", "op", op, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
	}
	return conn, nil
}

// nullableString trims the value and maps blank strings to nil so NULL is stored.
func nullableString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// scanContact reads the contact columns in selectContactsSQL order, then any extra columns.
func scanContact(rows pgx.Rows, contact *entity.Contact, extra ...any) error {
	var company sql.NullString
	dest := append([]any{&contact.ID, &contact.Name, &contact.Email, &company, &contact.Message, &contact.CreatedAt}, extra...)
	if err := rows.Scan(dest...); err != nil {
		return err
	}
	contact.Company = fromNullString(company)
	return nil
}

func fromNullString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
