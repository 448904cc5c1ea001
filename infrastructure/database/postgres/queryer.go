package postgres

import "database/sql"

// Queryer é satisfeito por *sql.DB e *sql.Tx; repositórios que precisam rodar
// dentro da transação do lote recebem um Queryer em vez da Connection.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
