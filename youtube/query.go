package youtube

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	paramKey       = "key"
	paramPart      = "part"
	paramPageToken = "pageToken"
)

// Params holds query parameters passed through to the API verbatim.
// Nil values are treated as absent and skipped.
type Params map[string]any

// Query is the call-local parameter set of one request. Every resource
// operation builds its own Query, so requests never share buffers.
type Query struct {
	params map[string]string
	parts  []string
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{params: make(map[string]string)}
}

// AddPart appends a resource part.
func (q *Query) AddPart(names ...string) {
	q.parts = append(q.parts, names...)
}

// ClearParts drops all parts.
func (q *Query) ClearParts() {
	q.parts = nil
}

// AddParam sets a parameter, overwriting any previous value.
// A nil value is ignored.
func (q *Query) AddParam(key string, value any) {
	if value == nil {
		return
	}
	q.params[key] = formatValue(value)
}

// AddParams copies every non-nil entry of p.
func (q *Query) AddParams(p Params) {
	for k, v := range p {
		q.AddParam(k, v)
	}
}

// ClearParams drops every parameter except the API key.
func (q *Query) ClearParams() {
	key, ok := q.params[paramKey]
	q.params = make(map[string]string)
	if ok {
		q.params[paramKey] = key
	}
}

// Get returns a parameter value.
func (q *Query) Get(key string) (string, bool) {
	v, ok := q.params[key]
	return v, ok
}

// Params returns a copy of the parameters.
func (q *Query) Params() map[string]string {
	return maps.Clone(q.params)
}

// Parts returns a copy of the parts.
func (q *Query) Parts() []string {
	return slices.Clone(q.parts)
}

// PartList joins the parts the way the API expects them.
func (q *Query) PartList() string {
	return strings.Join(q.parts, ",")
}

// Clone returns an independent copy.
func (q *Query) Clone() *Query {
	return &Query{
		params: maps.Clone(q.params),
		parts:  slices.Clone(q.parts),
	}
}

// Validate fails when no API key is present.
func (q *Query) Validate() error {
	if q.params[paramKey] == "" {
		return newValidationError()
	}
	return nil
}

// Encode URL-encodes the parameters, sorted by key.
func (q *Query) Encode() string {
	values := url.Values{}
	for k, v := range q.params {
		values.Set(k, v)
	}
	return values.Encode()
}

// URL joins base, path and the encoded parameters.
func (q *Query) URL(base, path string) string {
	return base + path + "?" + q.Encode()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
