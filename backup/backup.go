package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/streetvendor/ledger/record"
	"github.com/streetvendor/ledger/u"
)

// for tests
var timeNow = time.Now

// Options configures a backup run.
type Options struct {
	// Compression is the extension of the compression applied to
	// every backup file: "gz", "zst" or "br". Empty means a plain
	// copy. Compressed backups read back through
	// u.OpenFileMaybeCompressed.
	Compression string
}

// data files worth backing up
var backupExts = []string{".txt", ".csv"}

func isDataFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range backupExts {
		if ext == e {
			return true
		}
	}
	return false
}

// Run copies every data file from srcDir into dstDir (created if
// missing) under <stem>_<timestamp><ext> and returns the count of
// files copied. Subdirectories are not descended into.
func Run(srcDir, dstDir string, opts *Options) (int, error) {
	if !u.DirExists(srcDir) {
		return 0, fmt.Errorf("source directory %s: %w", srcDir, record.ErrNotFound)
	}
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return 0, err
	}
	if opts == nil {
		opts = &Options{}
	}

	timestamp := timeNow().Format("20060102_150405")

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if !e.Type().IsRegular() || !isDataFile(e.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(srcDir, e.Name()))
		if err != nil {
			return count, err
		}
		ext := filepath.Ext(e.Name())
		stem := strings.TrimSuffix(e.Name(), ext)
		name := stem + "_" + timestamp + ext
		if opts.Compression != "" {
			name += "." + opts.Compression
		}
		err = u.WriteFileCompressed(filepath.Join(dstDir, name), data)
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
