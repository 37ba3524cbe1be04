// internal/app/system/paging/paging.go
package paging

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// Window is an offset/limit page request for Mongo Find queries. The
// zero value means no cap and no offset.
type Window struct {
	Limit int64
	Skip  int64
}

// Parse reads the "limit" and "skip" query parameters. Absent parameters
// yield zero values; negative or non-numeric values are an error naming
// the offending parameter.
func Parse(r *http.Request) (Window, error) {
	q := r.URL.Query()

	limit, err := parseParam(q.Get("limit"), "limit")
	if err != nil {
		return Window{}, err
	}
	skip, err := parseParam(q.Get("skip"), "skip")
	if err != nil {
		return Window{}, err
	}
	return Window{Limit: limit, Skip: skip}, nil
}

// ApplyToFind configures FindOptions with the window's limit and skip.
func (w Window) ApplyToFind(find *options.FindOptions) {
	if w.Limit > 0 {
		find.SetLimit(w.Limit)
	}
	if w.Skip > 0 {
		find.SetSkip(w.Skip)
	}
}

func parseParam(raw, name string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}
