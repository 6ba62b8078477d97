package distmatrix

import "errors"

// ErrEmptyInput is returned by Build when given zero points.
var ErrEmptyInput = errors.New("distmatrix: empty point set")
