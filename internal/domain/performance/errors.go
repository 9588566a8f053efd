package performance

import "errors"

var (
	ErrRecordNotFound = errors.New("performance record not found")
	ErrRecordExists   = errors.New("performance record already exists for employee and period")
)
