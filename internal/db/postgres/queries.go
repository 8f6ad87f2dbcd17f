// Package postgres implements the question and category store on top of pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries runs the trivia statements against a pgx connection.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a copy bound to the given transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const listCategories = `SELECT id, type FROM categories ORDER BY id`

func (q *Queries) ListCategories(ctx context.Context) ([]db.Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[db.Category])
}

const getCategory = `SELECT id, type FROM categories WHERE id = $1`

func (q *Queries) GetCategory(ctx context.Context, id int64) (db.Category, error) {
	var c db.Category
	err := q.db.QueryRow(ctx, getCategory, id).Scan(&c.ID, &c.Type)
	return c, noRows(err)
}

const listQuestions = `SELECT id, question, answer, category, difficulty FROM questions ORDER BY id`

func (q *Queries) ListQuestions(ctx context.Context) ([]db.Question, error) {
	rows, err := q.db.Query(ctx, listQuestions)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[db.Question])
}

const listQuestionsByCategory = `SELECT id, question, answer, category, difficulty FROM questions
WHERE category = $1
ORDER BY id`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsByCategory, categoryID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[db.Question])
}

const getQuestion = `SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`

func (q *Queries) GetQuestion(ctx context.Context, id int64) (db.Question, error) {
	var row db.Question
	err := q.db.QueryRow(ctx, getQuestion, id).Scan(
		&row.ID, &row.Question, &row.Answer, &row.Category, &row.Difficulty,
	)
	return row, noRows(err)
}

const insertQuestion = `INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category, difficulty`

func (q *Queries) InsertQuestion(ctx context.Context, arg db.InsertQuestionParams) (db.Question, error) {
	var row db.Question
	err := q.db.QueryRow(ctx, insertQuestion, arg.Question, arg.Answer, arg.Category, arg.Difficulty).Scan(
		&row.ID, &row.Question, &row.Answer, &row.Category, &row.Difficulty,
	)
	return row, err
}

const deleteQuestion = `DELETE FROM questions WHERE id = $1`

// DeleteQuestion returns the number of removed rows.
func (q *Queries) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func noRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return db.ErrNoRows
	}
	return err
}
