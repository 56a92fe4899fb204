package sellers

import "github.com/JaimeStill/market-api/pkg/failure"

// Domain errors for seller operations.
var (
	ErrNotFound  error = &failure.NotFound{Resource: "Seller"}
	ErrDuplicate error = &failure.ValidationFailed{
		Fields: map[string][]string{"email": {"The email has already been taken."}},
	}
)
