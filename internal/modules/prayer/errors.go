package prayer

import "errors"

var ErrValidation = errors.New("validation error")
