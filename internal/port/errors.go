package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrTaskNotFound = errors.New("task not found")
)

// UpstreamError carries a failure from a hosted collaborator (identity
// provider or store). Message is the provider's own text and is forwarded
// to the client verbatim; Code is the provider's HTTP status.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// AsUpstream unwraps err into an UpstreamError, if it is one.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
