package portal

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

type Stringable struct {
	value string
}

func NewStringable(value string) Stringable {
	return Stringable{value: value}
}

func MakeStringable(value string) Stringable {
	return NewStringable(value)
}

func (s Stringable) ToLower() string {
	return strings.ToLower(strings.TrimSpace(s.value))
}

func (s Stringable) ToSnakeCase() string {
	var sb strings.Builder

	for i, r := range strings.TrimSpace(s.value) {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func (s Stringable) ToDatetime() (*time.Time, error) {
	seed := strings.TrimSpace(s.value)

	layouts := []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, seed); err == nil {
			return &parsed, nil
		}
	}

	return nil, fmt.Errorf("unable to parse datetime from %q", seed)
}

func (s Stringable) Dd(subject any) {
	fmt.Printf("%s: %+v\n", s.value, subject)
}
