package diagnosis

import "errors"

var ErrNotFound = errors.New("not found")
