package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// Use this function to build a validation result from more than one failure
// check. A multi error collection is flattened, so appending two multi errors
// produces a single level result.
func Append(errs ...error) error {
	var out multiError
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
			// Skip.
		case multiError:
			out = append(out, e...)
		default:
			out = append(out, e)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}

type multiError []error

func (e multiError) Error() string {
	if len(e) == 1 {
		return fmt.Sprintf("1 error occurred:\n\t* %s\n", e[0])
	}
	points := make([]string, len(e))
	for i, err := range e {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf(
		"%d errors occurred:\n\t%s\n",
		len(e), strings.Join(points, "\n\t"))
}

// ABCICode returns the code of the first contained error. All errors of a
// collection are important, but only one can be reported back.
func (e multiError) ABCICode() uint32 {
	for _, err := range e {
		return abciCode(err)
	}
	return internalABCICode
}

// Cause returns the first error of the collection so that error kind tests
// can unwrap a collection the same way as a wrapped error.
func (e multiError) Cause() error {
	if len(e) == 0 {
		return nil
	}
	return e[0]
}
