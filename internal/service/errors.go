package service

import (
	"fmt"
	"strconv"
	"time"
)

// ValidationError marks a request the caller can fix; handlers map it to a
// 400 with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// newID returns a millisecond-epoch token, the id format both collections
// have always used on the wire.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
