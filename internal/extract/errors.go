package extract

import (
	"errors"
	"fmt"
)

// ErrNoRecipeFound is returned when the page fetched fine but no structured
// data block contained a recipe-typed node. It is a normal negative result,
// not a malfunction.
var ErrNoRecipeFound = errors.New("no recipe found in page")

// FetchError reports a network failure or a non-success HTTP status while
// retrieving the page.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }
