package harness

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atlanticdynamic/hellodevops/internal/fancy"
)

var (
	ErrRequestFailed = errors.New("request failed")
	ErrInvalidURL    = errors.New("invalid base URL")
	ErrNilHandler    = errors.New("handler is nil")
)

// Fields compared by a check
const (
	FieldStatus = "status"
	FieldBody   = "body"
)

const maxErrorValueLen = 80

// MismatchError reports one response field that differed from the expectation
type MismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: expected %q, got %q",
		e.Field,
		fancy.TruncateString(e.Expected, maxErrorValueLen),
		fancy.TruncateString(e.Actual, maxErrorValueLen),
	)
}

// compare returns nil when the response matches, or the mismatches joined together
func compare(expect Expectation, status int, body []byte) error {
	var errs []error
	if status != expect.Status {
		errs = append(errs, &MismatchError{
			Field:    FieldStatus,
			Expected: strconv.Itoa(expect.Status),
			Actual:   strconv.Itoa(status),
		})
	}
	if string(body) != expect.Body {
		errs = append(errs, &MismatchError{
			Field:    FieldBody,
			Expected: expect.Body,
			Actual:   string(body),
		})
	}
	return errors.Join(errs...)
}
