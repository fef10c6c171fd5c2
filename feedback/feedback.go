package feedback

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/streetvendor/ledger/record"
)

// The feedback log is append-only. Each entry is a 4-line block:
//
//	===== FEEDBACK: <timestamp> =====
//	Customer: <name>
//	Rating: <n>/5
//	Comments: <text>
//	<blank line>

// for tests
var timeNow = time.Now

// Entry is one feedback block as read back from the log. Rating keeps
// its written form ("4/5"). Fields missing from a partial block stay
// empty.
type Entry struct {
	Timestamp string
	Customer  string
	Rating    string
	Comments  string
}

// Save appends one feedback block with the current timestamp. Rating
// must be in [1,5]. Comments are a single line; the blank line after
// the block is the entry separator.
func Save(path, customerName string, rating int, comments string) error {
	if rating < 1 || rating > 5 {
		return &record.ValidationError{Reason: "rating must be an integer between 1 and 5"}
	}

	timestamp := timeNow().Format(record.TimeLayout)
	block := record.FeedbackBannerMark + " " + timestamp + " =====\n" +
		record.CustomerPrefix + customerName + "\n" +
		record.RatingPrefix + strconv.Itoa(rating) + "/5\n" +
		record.CommentsPrefix + comments + "\n\n"

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	_, err = f.WriteString(block)
	if err != nil {
		f.Close()
		return err
	}
	err = f.Sync()
	if err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("error saving feedback: %w", err)
	}
	return nil
}
