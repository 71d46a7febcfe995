package payroll

import "errors"

var (
	ErrSnapshotNotFound = errors.New("weekly snapshot not found")
	ErrInvalidWeek      = errors.New("invalid week, expected YYYY-MM-DD")
)
