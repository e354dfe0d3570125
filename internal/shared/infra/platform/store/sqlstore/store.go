package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
)

// Dialect agrupa lo que cambia entre SQLite y PostgreSQL.
type Dialect struct {
	Name       string
	DriverName string
	schema     string
	patchExpr  string // expresión SQL que fusiona 'doc' con el parche (primer parámetro)
	positional bool   // $1, $2... en vez de ?
}

var (
	SQLite = Dialect{
		Name:       "sqlite",
		DriverName: "sqlite",
		schema: `
			CREATE TABLE IF NOT EXISTS records (
				seq INTEGER PRIMARY KEY AUTOINCREMENT,
				collection TEXT NOT NULL,
				id TEXT NOT NULL,
				created_at TEXT NOT NULL,
				doc TEXT NOT NULL,
				UNIQUE (collection, id)
			)`,
		patchExpr: "json_patch(doc, ?)",
	}

	Postgres = Dialect{
		Name:       "postgres",
		DriverName: "pgx",
		schema: `
			CREATE TABLE IF NOT EXISTS records (
				seq BIGSERIAL PRIMARY KEY,
				collection TEXT NOT NULL,
				id TEXT NOT NULL,
				created_at TEXT NOT NULL,
				doc JSONB NOT NULL,
				UNIQUE (collection, id)
			)`,
		patchExpr:  "doc || ?::jsonb",
		positional: true,
	}
)

var ErrMissingID = errors.New("document has no string id")

// Store implementa RecordStore con una única tabla 'records' que guarda cada
// documento como JSON.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

var _ sharedDomain.RecordStore = (*Store)(nil)

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Open abre la conexión con el driver del dialecto. Para SQLite se limita el pool
// a una conexión: ":memory:" es una base distinta por conexión.
func Open(dialect Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect.Name, err)
	}
	if dialect.Name == SQLite.Name {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// InitSchema crea la tabla records si no existe.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.schema); err != nil {
		return fmt.Errorf("init %s schema: %w", s.dialect.Name, err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc sharedDomain.Document) error {
	id, ok := doc["id"].(string)
	if !ok || id == "" {
		return ErrMissingID
	}
	createdAt, _ := doc["timestamp"].(string)

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO records (collection, id, created_at, doc) VALUES (?, ?, ?, ?)`),
		collection, id, createdAt, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Find(ctx context.Context, collection string, limit int) ([]sharedDomain.Document, error) {
	query := `SELECT doc FROM records WHERE collection = ? ORDER BY seq`
	args := []interface{}{collection}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]sharedDomain.Document, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var doc sharedDomain.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *Store) Update(ctx context.Context, collection, id string, patch sharedDomain.Document) (int64, error) {
	payload, err := json.Marshal(patch)
	if err != nil {
		return 0, fmt.Errorf("encode patch: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		s.rebind(`UPDATE records SET doc = `+s.dialect.patchExpr+` WHERE collection = ? AND id = ?`),
		string(payload), collection, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return res.RowsAffected()
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT COUNT(*) FROM records WHERE collection = ?`),
		collection,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// rebind traduce los '?' a '$n' cuando el dialecto lo pide.
func (s *Store) rebind(query string) string {
	if !s.dialect.positional {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
