// Package db holds the row types shared by the relational store backends.
package db

import "errors"

// ErrNoRows is returned by store backends when a lookup matches nothing.
var ErrNoRows = errors.New("no rows in result set")

type Category struct {
	ID   int64
	Type string
}

type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}

type InsertQuestionParams struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}
