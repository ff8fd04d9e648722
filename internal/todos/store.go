package todos

import (
	"context"
	"database/sql"
	"fmt"

	"todo-backend/internal/config"
)

type Store struct {
	db *sql.DB
	q  queries
}

// queries holds the per-dialect SQL. Postgres returns the generated id via
// RETURNING; sqlite and mysql report it through LastInsertId.
type queries struct {
	createTable   string
	selectAll     string
	insert        string
	insertReturns bool
	deleteByID    string
}

var dialects = map[string]queries{
	config.DriverSQLite: {
		createTable: `CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			is_done BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		selectAll:  `SELECT id, title, is_done FROM todos ORDER BY id`,
		insert:     `INSERT INTO todos (title, is_done) VALUES (?, ?)`,
		deleteByID: `DELETE FROM todos WHERE id = ?`,
	},
	config.DriverPostgres: {
		createTable: `CREATE TABLE IF NOT EXISTS todos (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			is_done BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		selectAll:     `SELECT id, title, is_done FROM todos ORDER BY id`,
		insert:        `INSERT INTO todos (title, is_done) VALUES ($1, $2) RETURNING id`,
		insertReturns: true,
		deleteByID:    `DELETE FROM todos WHERE id = $1`,
	},
	config.DriverMySQL: {
		createTable: `CREATE TABLE IF NOT EXISTS todos (
			id BIGINT PRIMARY KEY AUTO_INCREMENT,
			title TEXT NOT NULL,
			is_done BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		selectAll:  `SELECT id, title, is_done FROM todos ORDER BY id`,
		insert:     `INSERT INTO todos (title, is_done) VALUES (?, ?)`,
		deleteByID: `DELETE FROM todos WHERE id = ?`,
	},
}

func NewStore(db *sql.DB, driver string) (*Store, error) {
	q, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	return &Store{db: db, q: q}, nil
}

// Init creates the todos table if it does not exist yet. Must run before the
// server accepts traffic.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, s.q.createTable)
	return err
}

func (s *Store) List(ctx context.Context) ([]Todo, error) {
	rows, err := s.db.QueryContext(ctx, s.q.selectAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.IsDone); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (s *Store) Create(ctx context.Context, title string, isDone bool) (Todo, error) {
	t := Todo{Title: title, IsDone: isDone}

	if s.q.insertReturns {
		if err := s.db.QueryRowContext(ctx, s.q.insert, title, isDone).Scan(&t.ID); err != nil {
			return Todo{}, err
		}
		return t, nil
	}

	res, err := s.db.ExecContext(ctx, s.q.insert, title, isDone)
	if err != nil {
		return Todo{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Todo{}, err
	}
	t.ID = id
	return t, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q.deleteByID, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
