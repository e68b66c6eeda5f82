package icu

import "errors"

var (
	ErrInvalidTemplate     = errors.New("icu: invalid message template")
	ErrMissingArgument     = errors.New("icu: missing template argument")
	ErrNoMatchingSelection = errors.New("icu: no matching selection")
	ErrMissingOtherCase    = errors.New("icu: plural cases must include other")
)
