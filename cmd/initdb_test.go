package cmd

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mydb "github.com/rnacentral/rnacentral-go/pkg/db"
)

func TestInitDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "rnacentral.db")
	ctx := context.Background()

	require.NoError(t, initDB(ctx, path))
	// running it again leaves existing tables alone
	require.NoError(t, initDB(ctx, path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT INTO rna (upi, md5, len, seq_short) VALUES ('URS0000000001', 'aaa', 4, 'ACGU')`)
	require.NoError(t, err)

	s, err := mydb.NewRNAcentralDB(db).Sequence(ctx, "URS0000000001")
	require.NoError(t, err)
	assert.Equal(t, "ACGU", s.Seq)
}

func TestInitDBCommand(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path := filepath.Join(t.TempDir(), "rnacentral.db")

	rootCmd.SetArgs([]string{"init-db", "--db", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())

	assert.FileExists(t, path)
}
