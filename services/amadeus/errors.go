package amadeus

import "fmt"

// AuthenticationError means the credential exchange itself was
// rejected. It is fatal for the call and never retried.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("amadeus authentication failed (%d): %s", e.Status, e.Message)
}

// ExternalServiceError means the provider kept failing after the retry
// budget was spent, or the transport itself failed. It carries the last
// HTTP status and message seen.
type ExternalServiceError struct {
	Status  int
	Message string
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("amadeus request failed (%d): %s", e.Status, e.Message)
}
