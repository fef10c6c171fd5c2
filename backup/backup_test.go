package backup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/streetvendor/ledger/record"
	"github.com/streetvendor/ledger/require"
	"github.com/streetvendor/ledger/u"
)

func pinTime(t *testing.T) {
	t.Helper()
	tm := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)
	prev := timeNow
	timeNow = func() time.Time { return tm }
	t.Cleanup(func() { timeNow = prev })
}

func setupSrc(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "inventory.txt"), []byte("samosa,10,2.5\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sales.csv"), []byte(record.SalesHeader+"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.md"), []byte("not a data file\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(src, "backups"), 0755))
	return src
}

func TestRun(t *testing.T) {
	pinTime(t)
	src := setupSrc(t)
	dst := filepath.Join(src, "backups")

	n, err := Run(src, dst, nil)
	require.NoError(t, err)
	// only .txt and .csv files count
	require.Equal(t, 2, n)

	d, err := os.ReadFile(filepath.Join(dst, "inventory_20260823_150405.txt"))
	require.NoError(t, err)
	require.Equal(t, "samosa,10,2.5\n", string(d))
	d, err = os.ReadFile(filepath.Join(dst, "sales_20260823_150405.csv"))
	require.NoError(t, err)
	require.Equal(t, record.SalesHeader+"\n", string(d))
}

func TestRunCreatesDstDir(t *testing.T) {
	pinTime(t)
	src := setupSrc(t)
	dst := filepath.Join(t.TempDir(), "nested", "backups")
	n, err := Run(src, dst, nil)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestRunMissingSrc(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, record.ErrNotFound))
}

func TestRunCompressed(t *testing.T) {
	pinTime(t)
	for _, comp := range []string{"gz", "zst", "br"} {
		src := setupSrc(t)
		dst := filepath.Join(src, "backups")
		n, err := Run(src, dst, &Options{Compression: comp})
		require.NoError(t, err, comp)
		require.Equal(t, 2, n, comp)

		path := filepath.Join(dst, "inventory_20260823_150405.txt."+comp)
		d, err := u.ReadFileMaybeCompressed(path)
		require.NoError(t, err, comp)
		require.Equal(t, "samosa,10,2.5\n", string(d), comp)
	}
}
