package attendance

import "errors"

var (
	ErrRecordNotFound  = errors.New("daily record not found")
	ErrDateOutsideWeek = errors.New("date is outside the requested week")
	ErrDuplicateDate   = errors.New("date appears more than once in the batch")
)
