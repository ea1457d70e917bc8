package apperr

import "errors"

// Sentinel errors for the four failure classes the service can hit.
// Handlers collapse all of them into a 400 {"error": ...} envelope;
// Kind exists for structured logging, not for the wire.
var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrGateway       = errors.New("payment gateway error")
	ErrStorage       = errors.New("order store error")

	// ErrTransactionNotFound marks a gateway 404 on status lookup.
	// The poller treats it as a normal outcome, not a failure.
	ErrTransactionNotFound = errors.New("transaction not found")
)

func Kind(err error) string {
	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrValidation):
		return "validation"

	case errors.Is(err, ErrConfiguration):
		return "configuration"

	case errors.Is(err, ErrTransactionNotFound):
		return "not_found"

	case errors.Is(err, ErrGateway):
		return "gateway"

	case errors.Is(err, ErrStorage):
		return "storage"

	default:
		return "internal"
	}
}
