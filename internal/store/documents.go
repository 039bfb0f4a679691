package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNoDocument is returned when an id (or equality lookup) matches nothing.
var ErrNoDocument = errors.New("store: no such document")

// Known collections. The table name is interpolated into SQL, so anything
// outside this set is refused.
const (
	Jobs      = "jobs"
	Companies = "companies"
	Users     = "users"
)

var collections = map[string]bool{Jobs: true, Companies: true, Users: true}

// Fixed-width UTC layout so lexicographic order on the column matches
// chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Document is one stored record: the JSON body plus the indexed columns.
type Document struct {
	ID         string
	OwnerEmail string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Body       []byte
}

// Collection addresses one table of documents.
type Collection struct {
	db   *sql.DB
	name string
}

func (d *DB) Collection(name string) (Collection, error) {
	if !collections[name] {
		return Collection{}, fmt.Errorf("store: unknown collection %q", name)
	}
	return Collection{db: d.Pool, name: name}, nil
}

// MustCollection is for startup wiring where the name is a package constant.
func (d *DB) MustCollection(name string) Collection {
	c, err := d.Collection(name)
	if err != nil {
		panic(err)
	}
	return c
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	for name := range collections {
		if _, err := tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  id TEXT PRIMARY KEY,
  owner_email TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  body TEXT NOT NULL
);
`, name)); err != nil {
			return err
		}
		if _, err := tx.Exec(fmt.Sprintf(`
CREATE INDEX IF NOT EXISTS idx_%s_owner_email ON %s(owner_email);
`, name, name)); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// Insert stores a new document and returns its assigned id.
func (c Collection) Insert(ctx context.Context, owner string, created time.Time, body []byte) (string, error) {
	id := uuid.NewString()
	ts := created.UTC().Format(timeLayout)
	_, err := c.db.ExecContext(ctx, fmt.Sprintf(`
INSERT INTO %s (id, owner_email, created_at, updated_at, body) VALUES (?,?,?,?,?);
`, c.name), id, owner, ts, ts, string(body))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (c Collection) Get(ctx context.Context, id string) (Document, error) {
	row := c.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT id, owner_email, created_at, updated_at, body FROM %s WHERE id = ?;
`, c.name), id)
	return scanDocument(row)
}

// Replace swaps a document's body wholesale, embedded records included.
func (c Collection) Replace(ctx context.Context, id string, updated time.Time, body []byte) error {
	res, err := c.db.ExecContext(ctx, fmt.Sprintf(`
UPDATE %s SET updated_at = ?, body = ? WHERE id = ?;
`, c.name), updated.UTC().Format(timeLayout), string(body), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoDocument
	}
	return nil
}

func (c Collection) Delete(ctx context.Context, id string) error {
	res, err := c.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?;`, c.name), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoDocument
	}
	return nil
}

// ListByOwner returns the owner's documents, most recently created first.
// Rowid breaks ties between same-instant inserts.
func (c Collection) ListByOwner(ctx context.Context, owner string) ([]Document, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(`
SELECT id, owner_email, created_at, updated_at, body FROM %s
WHERE owner_email = ?
ORDER BY created_at DESC, rowid DESC;
`, c.name), owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanDocument(row scannable) (Document, error) {
	var doc Document
	var created, updated, body string
	err := row.Scan(&doc.ID, &doc.OwnerEmail, &created, &updated, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNoDocument
	}
	if err != nil {
		return Document{}, err
	}
	doc.CreatedAt, _ = time.Parse(timeLayout, created)
	doc.UpdatedAt, _ = time.Parse(timeLayout, updated)
	doc.Body = []byte(body)
	return doc, nil
}
