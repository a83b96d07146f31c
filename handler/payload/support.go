package payload

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// GetIDFrom parses the {id} path segment. Routes only match digits-ish
// values, but the handler still owns the final word on what is an id.
func GetIDFrom(r *http.Request) (uint64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}

	return id, nil
}
