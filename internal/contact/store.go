package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mownders/academy/internal/db"
)

// ErrNotFound is returned when no message has the requested id.
var ErrNotFound = errors.New("contact message not found")

// ListFilter controls which messages are returned by List.
type ListFilter struct {
	Since  time.Time
	Email  string
	Limit  int
	Offset int
}

// Store persists contact messages.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts m. If m.ID is empty a UUID is generated; if m.CreatedAt is
// zero it is set to now.
func (s *Store) Create(ctx context.Context, m *Message) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	forwarded := 0
	if m.Forwarded {
		forwarded = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, phone, message, remote_addr, forwarded, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Phone, m.Message, m.RemoteAddr, forwarded,
		m.CreatedAt.UTC().Format(time.DateTime),
	)
	if err != nil {
		return fmt.Errorf("inserting contact message: %w", err)
	}
	return nil
}

// GetByID retrieves a single message.
func (s *Store) GetByID(ctx context.Context, id string) (*Message, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, message, remote_addr, forwarded, created_at
		FROM contact_messages WHERE id = ?`, id)

	m, err := scanInto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact message: %w", err)
	}
	return m, nil
}

// List returns messages matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Message, error) {
	var (
		clauses []string
		args    []any
	)

	if !filter.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}
	if filter.Email != "" {
		clauses = append(clauses, "email = ?")
		args = append(args, filter.Email)
	}

	query := "SELECT id, name, email, phone, message, remote_addr, forwarded, created_at FROM contact_messages"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	var result []Message
	for rows.Next() {
		m, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}

// Count returns the number of stored messages.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_messages").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting contact messages: %w", err)
	}
	return n, nil
}

// MarkForwarded records that the message reached the webhook.
func (s *Store) MarkForwarded(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE contact_messages SET forwarded = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking contact message forwarded: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Message, error) {
	var (
		m         Message
		forwarded int
		ts        string
	)

	err := sc.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.RemoteAddr, &forwarded, &ts)
	if err != nil {
		return nil, err
	}
	m.Forwarded = forwarded != 0

	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		m.CreatedAt = t
	} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
		m.CreatedAt = t
	}

	return &m, nil
}
