package database

import "github.com/jmoiron/sqlx"

// rebind rewrites the "?" placeholders of query into the style of bindType:
// $1, $2... for sqlx.DOLLAR, unchanged for sqlx.QUESTION.
func rebind(bindType int, query string) string {
	return sqlx.Rebind(bindType, query)
}
