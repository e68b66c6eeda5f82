package langtag

import "errors"

var ErrInvalidTag = errors.New("langtag: invalid language tag")
