package handler

import (
	"fmt"
	"time"
)

// listingSalt builds the cache validator for a paginated listing from the
// page window and the newest update stamp, so any edit or reorder of the
// underlying rows invalidates previously issued ETags.
func listingSalt(section string, page int, total int64, latest time.Time) string {
	return fmt.Sprintf("%s-%d-%d-%d", section, page, total, latest.UTC().Unix())
}

func newestUpdate(stamps ...time.Time) time.Time {
	var latest time.Time

	for _, stamp := range stamps {
		if stamp.After(latest) {
			latest = stamp
		}
	}

	return latest
}
