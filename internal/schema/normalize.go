package schema

import (
	"encoding/json"
	"net/url"
	"strings"
)

// StringList decodes either a JSON array of strings or a single
// comma-delimited string. Forms send "remote, ai, startup"; API clients
// tend to send ["remote","ai","startup"]. Both land here.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = SplitList(s)
		return nil
	}
	var xs []string
	if err := json.Unmarshal(b, &xs); err != nil {
		return err
	}
	*l = cleanList(xs)
	return nil
}

// SplitList splits on commas, trims each token, and drops empty ones.
// Order is kept as typed; duplicates are kept too.
func SplitList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

func cleanList(xs []string) []string {
	out := []string{}
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		out = append(out, x)
	}
	return out
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// checkURL accepts "" as valid; anything else must parse as an absolute URL.
func checkURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errf(field, "must be a valid URL or empty")
	}
	return nil
}
