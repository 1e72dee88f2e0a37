package domain

import "errors"

var (
	MessageFailedBodyRequest = "failed to parse body request"
	MessageFailedParseID     = "failed to parse id"

	ErrInvalidID = errors.New("invalid id parameter")
)
