package visit

import "errors"

var ErrVisitNotFound = errors.New("visit record not found")
