// Package sqlite provides the SQLite-backed store for users, customers and
// invoices.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/msantanna/atelier.page/internal/auth/credential"
	"github.com/msantanna/atelier.page/internal/invoice"
	apperrors "github.com/msantanna/atelier.page/internal/platform/errors"
	"github.com/msantanna/atelier.page/internal/platform/storage/sqlitemigrate"
	"github.com/msantanna/atelier.page/internal/storage/sqlite/migrations"
)

// Store persists site state in SQLite.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

// Open opens the site store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, clock: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// UserByEmail returns the trusted credential record for an email address.
func (s *Store) UserByEmail(ctx context.Context, email string) (credential.User, error) {
	if err := ctx.Err(); err != nil {
		return credential.User{}, err
	}
	if s == nil || s.sqlDB == nil {
		return credential.User{}, fmt.Errorf("storage is not configured")
	}

	var user credential.User
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, password FROM users WHERE email = ?`,
		strings.TrimSpace(email),
	)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return credential.User{}, credential.ErrUnknownUser
		}
		return credential.User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

// ListCustomers returns all customers ordered by name.
func (s *Store) ListCustomers(ctx context.Context) ([]invoice.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, name FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []invoice.Customer
	for rows.Next() {
		var customer invoice.Customer
		if err := rows.Scan(&customer.ID, &customer.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

// GetInvoice returns one invoice by id.
func (s *Store) GetInvoice(ctx context.Context, id string) (invoice.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return invoice.Invoice{}, err
	}
	if s == nil || s.sqlDB == nil {
		return invoice.Invoice{}, fmt.Errorf("storage is not configured")
	}

	var inv invoice.Invoice
	var status string
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, customer_id, amount_cents, status FROM invoices WHERE id = ?`,
		strings.TrimSpace(id),
	)
	if err := row.Scan(&inv.ID, &inv.CustomerID, &inv.AmountCents, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invoice.Invoice{}, apperrors.E(apperrors.KindNotFound, "invoice not found")
		}
		return invoice.Invoice{}, fmt.Errorf("query invoice: %w", err)
	}
	parsed, ok := invoice.ParseStatus(status)
	if !ok {
		return invoice.Invoice{}, fmt.Errorf("invoice %s has unknown status %q", inv.ID, status)
	}
	inv.Status = parsed
	return inv, nil
}

// ListInvoices returns all invoices with customer names, newest first.
func (s *Store) ListInvoices(ctx context.Context) ([]invoice.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT i.id, i.customer_id, i.amount_cents, i.status, c.name
		  FROM invoices i
		  JOIN customers c ON c.id = i.customer_id
		 ORDER BY i.created_at DESC, i.id`)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	var listings []invoice.Listing
	for rows.Next() {
		var listing invoice.Listing
		var status string
		if err := rows.Scan(
			&listing.Invoice.ID,
			&listing.Invoice.CustomerID,
			&listing.Invoice.AmountCents,
			&status,
			&listing.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		parsed, ok := invoice.ParseStatus(status)
		if !ok {
			return nil, fmt.Errorf("invoice %s has unknown status %q", listing.Invoice.ID, status)
		}
		listing.Invoice.Status = parsed
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	return listings, nil
}

// UpdateInvoice applies validated fields to a stored invoice.
func (s *Store) UpdateInvoice(ctx context.Context, id string, fields invoice.ValidatedFields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("invoice id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE invoices
		    SET customer_id = ?, amount_cents = ?, status = ?, updated_at = ?
		  WHERE id = ?`,
		fields.CustomerID,
		fields.AmountCents,
		string(fields.Status),
		s.clock().UTC().UnixMilli(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update invoice rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.E(apperrors.KindNotFound, "invoice not found")
	}
	return nil
}
