package engine

import "flatdb/internal/sql"

// Response is what a successfully executed statement returns. It is one
// of Message, Count or View.
type Response interface {
	isResponse()
}

// Message is a plain status text (CREATE, DROP, INSERT).
type Message string

// Count is the number of rows a statement changed (UPDATE, DELETE).
type Count int

// View is a materialized result table (SELECT).
type View struct {
	Table *sql.Table
}

func (Message) isResponse() {}
func (Count) isResponse()   {}
func (View) isResponse()    {}
