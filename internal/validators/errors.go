package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTeam          = errors.New("team name is required")
	ErrTooManyKeepers     = errors.New("too many keepers selected")
	ErrTooFewKeepers      = errors.New("not enough keepers selected")
	ErrEmptyKeeperName    = errors.New("keeper name is required")
	ErrInvalidKeeperName  = errors.New("keeper name cannot contain a line break")
	ErrNegativeKeeperCost = errors.New("keeper cost cannot be negative")
	ErrOverBudget         = errors.New("total keeper cost exceeds the team budget")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)
