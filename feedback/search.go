package feedback

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/streetvendor/ledger/record"
)

// parser states for scanning the feedback log
type parseState int

const (
	// between entries, field lines are ignored
	stateIdle parseState = iota
	// inside an entry, collecting field lines until a blank line
	stateCollecting
)

// Search scans the feedback log and returns entries whose field values
// contain term, case-insensitively. The empty term matches every
// entry. Lines before the first banner and lines without a known field
// prefix are ignored; a partial block at end of input is still tested.
func Search(path, term string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("feedback file %s: %w", path, record.ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	term = strings.ToLower(term)

	var results []Entry
	var cur Entry
	// field values in the order they were seen, the text the term is
	// matched against
	var text []string

	flush := func() {
		joined := strings.ToLower(strings.Join(text, " "))
		if strings.Contains(joined, term) {
			results = append(results, cur)
		}
	}

	state := stateIdle
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, record.FeedbackBannerMark):
			// a banner both closes the previous entry and opens a new one
			if state == stateCollecting {
				flush()
			}
			cur = Entry{}
			text = text[:0]
			ts := strings.TrimSpace(strings.Trim(strings.TrimPrefix(line, record.FeedbackBannerMark), "= "))
			cur.Timestamp = ts
			text = append(text, ts)
			state = stateCollecting
		case state == stateCollecting && strings.HasPrefix(line, record.CustomerPrefix):
			cur.Customer = strings.TrimPrefix(line, record.CustomerPrefix)
			text = append(text, cur.Customer)
		case state == stateCollecting && strings.HasPrefix(line, record.RatingPrefix):
			cur.Rating = strings.TrimPrefix(line, record.RatingPrefix)
			text = append(text, cur.Rating)
		case state == stateCollecting && strings.HasPrefix(line, record.CommentsPrefix):
			cur.Comments = strings.TrimPrefix(line, record.CommentsPrefix)
			text = append(text, cur.Comments)
		case state == stateCollecting && line == "":
			flush()
			state = stateIdle
		}
		// anything else: not part of an entry, skip
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// file didn't end with a blank line, test the in-progress entry
	if state == stateCollecting {
		flush()
	}
	return results, nil
}
