package buyers

import "github.com/JaimeStill/market-api/pkg/failure"

// Domain errors for buyer operations.
var (
	ErrNotFound  error = &failure.NotFound{Resource: "Buyer"}
	ErrDuplicate error = &failure.ValidationFailed{
		Fields: map[string][]string{"email": {"The email has already been taken."}},
	}
)
