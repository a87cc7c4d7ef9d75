package selectable

import (
	"errors"
	"fmt"
)

// ErrUnknownIdent indicates that no Selectable exists for an identity.
var ErrUnknownIdent = errors.New("unknown identity")

// Contract violation codes.
const (
	// CodeStale: a Selectable was used after the pool was reloaded or after
	// its identity vanished from the pool.
	CodeStale = "STALE_SELECTABLE"

	// CodeEmpty: a Selectable was requested for an identity without objects.
	CodeEmpty = "EMPTY_SELECTABLE"
)

// ContractError describes a caller bug. It is never returned; operations
// that detect one panic with a *ContractError.
type ContractError struct {
	Code    string
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("selectable contract violation (%s): %s", e.Code, e.Message)
}

func violate(code, format string, args ...any) {
	panic(&ContractError{Code: code, Message: fmt.Sprintf(format, args...)})
}
