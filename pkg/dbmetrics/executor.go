package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов к БД
// Реализуется *sql.DB, *sql.Tx и обёртками этого пакета
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс исполнителя запросов внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// txKey ключ контекста для активной транзакции
type txKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории, получившие такой контекст, будут выполнять запросы внутри транзакции
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext извлекает активную транзакцию из контекста
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

// GetExecutor возвращает исполнителя запросов для текущего контекста
// Если в контексте есть активная транзакция - возвращает её, иначе переданный db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}
