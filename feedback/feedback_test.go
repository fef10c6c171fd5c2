package feedback

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/streetvendor/ledger/record"
	"github.com/streetvendor/ledger/require"
)

func pinTime(t *testing.T, value string) {
	t.Helper()
	tm, err := time.Parse(record.TimeLayout, value)
	require.NoError(t, err)
	prev := timeNow
	timeNow = func() time.Time { return tm }
	t.Cleanup(func() { timeNow = prev })
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	pinTime(t, "2026-08-23 14:00:00")

	err := Save(path, "Asha", 5, "best samosa in town")
	require.NoError(t, err)
	d, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "===== FEEDBACK: 2026-08-23 14:00:00 =====\n" +
		"Customer: Asha\n" +
		"Rating: 5/5\n" +
		"Comments: best samosa in town\n\n"
	require.Equal(t, want, string(d))

	// a second entry appends after the blank separator
	err = Save(path, "Ben", 3, "tacos were cold")
	require.NoError(t, err)
	d, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, string(d[:len(want)]))
	require.Contains(t, string(d), "Customer: Ben\n")
}

func TestSaveRatingValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	for _, rating := range []int{0, 6, -1, 100} {
		err := Save(path, "Asha", rating, "x")
		require.Error(t, err)
		var ve *record.ValidationError
		require.True(t, errors.As(err, &ve))
	}
	_, err := os.Stat(path)
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	pinTime(t, "2026-08-23 14:00:00")
	require.NoError(t, Save(path, "Asha", 5, "best samosa in town"))
	require.NoError(t, Save(path, "Ben", 3, "tacos were cold"))
	require.NoError(t, Save(path, "Carla", 4, "great Samosa, slow line"))

	// case-insensitive substring over all fields
	got, err := Search(path, "SAMOSA")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Asha", got[0].Customer)
	require.Equal(t, "Carla", got[1].Customer)
	require.Equal(t, "2026-08-23 14:00:00", got[0].Timestamp)
	require.Equal(t, "5/5", got[0].Rating)
	require.Equal(t, "best samosa in town", got[0].Comments)

	// matches the customer field too
	got, err = Search(path, "ben")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "tacos were cold", got[0].Comments)

	// the empty term matches everything
	got, err = Search(path, "")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// no match is an empty result, not an error
	got, err = Search(path, "burrito")
	require.NoError(t, err)
	require.Len(t, got, 0)
}

func TestSearchNotFound(t *testing.T) {
	_, err := Search(filepath.Join(t.TempDir(), "nope.txt"), "x")
	require.Error(t, err)
	require.True(t, errors.Is(err, record.ErrNotFound))
}

func TestSearchNoTrailingBlankLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	content := "===== FEEDBACK: 2026-08-23 14:00:00 =====\n" +
		"Customer: Asha\n" +
		"Rating: 5/5\n" +
		"Comments: best samosa in town"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// the in-progress entry at end of input is still tested
	got, err := Search(path, "samosa")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Asha", got[0].Customer)
}

func TestSearchIgnoresStrayLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	content := "scribbles before any banner\n" +
		"Customer: Nobody\n" +
		"\n" +
		"===== FEEDBACK: 2026-08-23 14:00:00 =====\n" +
		"Customer: Asha\n" +
		"Rating: 5/5\n" +
		"some stray line inside the block\n" +
		"Comments: fine\n" +
		"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, err := Search(path, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Asha", got[0].Customer)

	// the stray Customer line before the first banner never matches
	got, err = Search(path, "nobody")
	require.NoError(t, err)
	require.Len(t, got, 0)
}

func TestSearchPartialBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	// banner then immediately another banner: first entry has only a
	// timestamp and is matched on it alone
	content := "===== FEEDBACK: 2026-08-22 09:00:00 =====\n" +
		"===== FEEDBACK: 2026-08-23 14:00:00 =====\n" +
		"Customer: Asha\n" +
		"Rating: 5/5\n" +
		"Comments: fine\n" +
		"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, err := Search(path, "2026-08-22")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "", got[0].Customer)
	require.Equal(t, "2026-08-22 09:00:00", got[0].Timestamp)
}

func TestSearchEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	got, err := Search(path, "anything")
	require.NoError(t, err)
	require.Len(t, got, 0)
}
