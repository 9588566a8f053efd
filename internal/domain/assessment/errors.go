package assessment

import "errors"

var ErrCycleNotFound = errors.New("assessment cycle not found")
