package calendar

import "errors"

var ErrValidation = errors.New("validation error")
