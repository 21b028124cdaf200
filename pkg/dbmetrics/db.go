package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

// DefaultPoolStatsInterval интервал сбора метрик connection pool
const DefaultPoolStatsInterval = 10 * time.Second

// DB обёртка над *sql.DB, записывающая метрики выполнения запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap оборачивает *sql.DB сбором метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{
		db:      db,
		metrics: m,
		service: service,
	}
}

// WrapWithDefault оборачивает *sql.DB сбором метрик запросов
// и запускает фоновый сбор метрик connection pool с дефолтным интервалом
// Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)
	go wrapped.collectPoolStats(DefaultPoolStatsInterval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := GetExecutor(ctx, d.db).ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return result, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := GetExecutor(ctx, d.db).QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик
// Ошибка выполнения доступна только при Scan, поэтому здесь фиксируется только длительность
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := GetExecutor(ctx, d.db).QueryRowContext(ctx, query, args...)
	d.observe(query, start, nil)
	return row
}

// BeginTx начинает транзакцию
// Запросы внутри транзакции также учитываются в метриках
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &measuredTx{tx: tx, db: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	op := queryOperation(query)
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		d.metrics.DBQueryErrors.WithLabelValues(op).Inc()
	}
}

// collectPoolStats периодически публикует статистику connection pool
func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues().Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsInUse.WithLabelValues().Set(float64(stats.InUse))
			d.metrics.DBConnectionsIdle.WithLabelValues().Set(float64(stats.Idle))
		case <-stopCh:
			return
		}
	}
}

// measuredTx транзакция с записью метрик запросов
type measuredTx struct {
	tx *sql.Tx
	db *DB
}

func (t *measuredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return result, err
}

func (t *measuredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return rows, err
}

func (t *measuredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe(query, start, nil)
	return row
}

func (t *measuredTx) Commit() error {
	return t.tx.Commit()
}

func (t *measuredTx) Rollback() error {
	return t.tx.Rollback()
}

// queryOperation возвращает первый токен SQL запроса (select/insert/update/delete)
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
