package base

import (
	"net/url"
	"strconv"
	"strings"
)

// Query collects upstream query parameters. Absent optional values are never
// sent: the setters skip empty strings, zero counts and nil flags.
type Query map[string]string

// Set stores v under key unless v is empty.
func (q Query) Set(key, v string) Query {
	if v != "" {
		q[key] = v
	}
	return q
}

// SetInt stores n under key unless n is zero.
func (q Query) SetInt(key string, n int) Query {
	if n != 0 {
		q[key] = strconv.Itoa(n)
	}
	return q
}

// SetBool stores an explicit true/false when b is non-nil.
func (q Query) SetBool(key string, b *bool) Query {
	if b != nil {
		q[key] = strconv.FormatBool(*b)
	}
	return q
}

// SetTrue stores "true" only when b is set. Used for selector flags like mine=true.
func (q Query) SetTrue(key string, b bool) Query {
	if b {
		q[key] = "true"
	}
	return q
}

// SetList joins the non-empty values with commas.
func (q Query) SetList(key string, values []string) Query {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) > 0 {
		q[key] = strings.Join(kept, ",")
	}
	return q
}

// Values converts the query to url.Values. A nil Query yields an empty set.
func (q Query) Values() url.Values {
	v := url.Values{}
	for key, val := range q {
		v.Set(key, val)
	}
	return v
}
