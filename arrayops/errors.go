package arrayops

import "errors"

// ErrUnexpectedValue is returned by DutchFlag when the slice holds a value
// other than 0, 1 or 2.
var ErrUnexpectedValue = errors.New("arrayops: unexpected value")
