package llm

import (
	"context"
	"errors"
	"net"

	openai "github.com/sashabaranov/go-openai"
)

// Completion failure taxonomy. The conversation engine must treat every one
// of these as "use the fallback response"; none of them may reach a visitor.
var (
	ErrCredentialMissing = errors.New("llm: credential missing")
	ErrTimeout           = errors.New("llm: request timed out")
	ErrTransport         = errors.New("llm: transport error")
	ErrMalformedResponse = errors.New("llm: malformed response")
)

// classifyErr maps raw client errors onto the taxonomy above.
func classifyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403 {
			return ErrCredentialMissing
		}
		return ErrTransport
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return ErrTransport
	}

	return ErrTransport
}
