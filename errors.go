package polyglot

import "errors"

var ErrInvalidFile = errors.New("polyglot: invalid translation file")
