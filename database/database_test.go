package database

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lezzetkesif/lezzetkesif/mockdata"
)

func plainHasher(p string) (string, error) { return "hash:" + p, nil }

func openTestDB(t *testing.T) *DB {
	t.Helper()
	migrations, err := fs.Sub(EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := New(DialectSQLite, filepath.Join(t.TempDir(), "test.db"), migrations, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSplitStatements(t *testing.T) {
	sql := `-- yorum; burada
CREATE TABLE a (x TEXT DEFAULT 'a;b');
INSERT INTO a VALUES ('it''s');
SELECT 1`
	stmts := splitStatements(sql)
	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE a (x TEXT DEFAULT 'a;b')", stmts[0])
	assert.Equal(t, "INSERT INTO a VALUES ('it''s')", stmts[1])
	assert.Equal(t, "SELECT 1", stmts[2])
}

func TestRebind(t *testing.T) {
	q := "SELECT * FROM t WHERE a = ? AND b = '?' AND c = ?"
	assert.Equal(t, q, Rebind(DialectSQLite, q))
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = '?' AND c = $2", Rebind(DialectPostgres, q))
}

func TestNewRejectsUnknownDialect(t *testing.T) {
	_, err := New("oracle", "x", EmbeddedMigrations, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestMigrationsAreRecordedOnce(t *testing.T) {
	db := openTestDB(t)

	migrations, err := fs.Sub(EmbeddedMigrations, "migrations")
	require.NoError(t, err)
	require.NoError(t, db.runMigrations(migrations))

	applied, err := db.appliedMigrations()
	require.NoError(t, err)
	assert.True(t, applied["001_init.sql"])
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ds, err := mockdata.Load()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, db.Seed(ctx, ds, plainHasher))
	require.NoError(t, db.Seed(ctx, ds, plainHasher))

	var n int
	require.NoError(t, db.Querier().QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&n))
	assert.Equal(t, 5, n)

	var hash string
	require.NoError(t, db.Querier().QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE email = ?", "test@example.com").Scan(&hash))
	assert.Equal(t, "hash:password", hash)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(q TxQuerier) error {
		if _, err := q.ExecContext(ctx, `INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
			"ghost", "ghost@example.com", "x"); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	var n int
	require.NoError(t, db.Querier().QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n))
	assert.Zero(t, n)
}
