package assessments

import "errors"

var ErrNotFound = errors.New("not found")
