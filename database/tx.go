// Package database: Transaction yönetimi.
//
// WithTx, birden fazla DB operasyonunun atomik (all-or-nothing) çalışmasını sağlar:
//   - Hepsi başarılı → COMMIT
//   - Herhangi biri başarısız → ROLLBACK
//
// Kullanım:
//
//	err := db.WithTx(ctx, func(q database.TxQuerier) error {
//	    if _, err := q.ExecContext(ctx, "INSERT ...", ...); err != nil {
//	        return err  // → ROLLBACK
//	    }
//	    return nil      // → COMMIT
//	})
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// TxQuerier, hem *sql.DB hem *sql.Tx tarafından karşılanan interface.
//
// Repository'ler bu interface'i dependency olarak alır; normal operasyonlarda
// DB, transaction içinde Tx geçilebilir.
type TxQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx, verilen fonksiyonu bir SQL transaction içinde çalıştırır.
//
// fn panic atarsa ROLLBACK yapılır ve panic tekrar fırlatılır;
// aksi halde transaction açık kalır ve DB lock'a neden olabilir.
func (db *DB) WithTx(ctx context.Context, fn func(q TxQuerier) error) (err error) {
	tx, err := db.Conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(rebinder{q: tx, dialect: db.Dialect})
	return
}

// rebinder, sorgudaki "?" placeholder'larını lehçeye göre yeniden yazar.
// SQLite "?" kabul eder; Postgres $1, $2, ... ister.
type rebinder struct {
	q       TxQuerier
	dialect Dialect
}

func (r rebinder) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.q.ExecContext(ctx, Rebind(r.dialect, query), args...)
}

func (r rebinder) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.q.QueryContext(ctx, Rebind(r.dialect, query), args...)
}

func (r rebinder) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return r.q.QueryRowContext(ctx, Rebind(r.dialect, query), args...)
}

// Rebind, "?" placeholder'larını Postgres için $n biçimine çevirir.
// Tek tırnaklı string literal'lerin içindeki "?" karakterlerine dokunulmaz.
func Rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inString := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inString = !inString
			b.WriteByte(ch)
		case ch == '?' && !inString:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
