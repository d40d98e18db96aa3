package attendance

import "errors"

var (
	ErrEventNotFound   = errors.New("clock event not found")
	ErrFutureTimestamp = errors.New("clock timestamp cannot be in the future")
)
