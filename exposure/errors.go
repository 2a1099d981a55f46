package exposure

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is matched by every InvalidOptionError.
var ErrInvalidOption = errors.New("invalid exposure option")

// InvalidOptionError reports an option key outside the recognized set.
type InvalidOptionError struct {
	Key Key
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("%q is not a valid option", string(e.Key))
}

// Is makes errors.Is(err, ErrInvalidOption) hold.
func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOption
}
