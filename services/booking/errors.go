package booking

import "errors"

var (
	// ErrNotAuthenticated means the call carried no valid user session.
	// No partial reservation is ever written for such a call.
	ErrNotAuthenticated = errors.New("user is not signed in to perform this action")

	// ErrNotAuthorized means the reservation belongs to a different user.
	ErrNotAuthorized = errors.New("reservation belongs to a different user")

	// ErrPaymentNotVerified means a confirmation was requested before the
	// stored reservation's payment flag was set.
	ErrPaymentNotVerified = errors.New("payment has not been verified for this reservation")
)
