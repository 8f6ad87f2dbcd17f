// Package sqlite is an embedded store backend used for local development and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/db"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// Store wraps a database/sql connection to a SQLite file.
type Store struct {
	conn *sql.DB
}

// Open connects to dsn, enables foreign keys and applies the schema.
func Open(dsn string) (*Store, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases and the foreign_keys pragma stable.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	if _, err := conn.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Store) ListCategories(ctx context.Context) ([]db.Category, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.Category
	for rows.Next() {
		var c db.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetCategory(ctx context.Context, id int64) (db.Category, error) {
	var c db.Category
	err := s.conn.QueryRowContext(ctx, `SELECT id, type FROM categories WHERE id = ?`, id).Scan(&c.ID, &c.Type)
	return c, noRows(err)
}

func (s *Store) ListQuestions(ctx context.Context) ([]db.Question, error) {
	return s.queryQuestions(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions ORDER BY id
	`)
}

func (s *Store) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	return s.queryQuestions(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions WHERE category = ? ORDER BY id
	`, categoryID)
}

func (s *Store) GetQuestion(ctx context.Context, id int64) (db.Question, error) {
	var q db.Question
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions WHERE id = ?
	`, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	return q, noRows(err)
}

func (s *Store) InsertQuestion(ctx context.Context, arg db.InsertQuestionParams) (db.Question, error) {
	res, err := s.conn.ExecContext(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES (?, ?, ?, ?)
	`, arg.Question, arg.Answer, arg.Category, arg.Difficulty)
	if err != nil {
		return db.Question{}, fmt.Errorf("insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return db.Question{}, fmt.Errorf("read inserted id: %w", err)
	}
	return db.Question{
		ID:         id,
		Question:   arg.Question,
		Answer:     arg.Answer,
		Category:   arg.Category,
		Difficulty: arg.Difficulty,
	}, nil
}

// DeleteQuestion returns the number of removed rows.
func (s *Store) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) queryQuestions(ctx context.Context, query string, args ...any) ([]db.Question, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.Question
	for rows.Next() {
		var q db.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func noRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrNoRows
	}
	return err
}
