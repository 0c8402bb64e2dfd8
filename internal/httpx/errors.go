package httpx

import "fmt"

// Stage identifies which outbound call failed.
type Stage string

const (
	StageExchange Stage = "exchange"
	StageFetch    Stage = "fetch"
	StageNotify   Stage = "notify"
)

// Kind identifies how an outbound call failed.
type Kind string

const (
	// KindTransport covers connectivity failures: DNS, TLS, resets, timeouts.
	KindTransport Kind = "transport"
	// KindDecode covers a response body that does not match the expected shape.
	KindDecode Kind = "decode"
	// KindRejectedClient and KindRejectedServer cover explicit non-2xx
	// responses from the remote end.
	KindRejectedClient Kind = "rejected_client"
	KindRejectedServer Kind = "rejected_server"
)

// Error is a failed outbound call. Status is set only for rejections.
type Error struct {
	Stage  Stage
	Kind   Kind
	Status int
	cause  error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Stage, e.Kind, e.Status)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }

// Transport wraps a connectivity failure.
func Transport(stage Stage, cause error) *Error {
	return &Error{Stage: stage, Kind: KindTransport, cause: cause}
}

// Decode wraps a malformed-response failure.
func Decode(stage Stage, cause error) *Error {
	return &Error{Stage: stage, Kind: KindDecode, cause: cause}
}

// CheckStatus classifies a response status and returns a rejection error for
// 4xx and 5xx. Every outbound call checks this before trusting the body.
func CheckStatus(stage Stage, status int) error {
	switch Classify(status) {
	case ClassClientError:
		return &Error{Stage: stage, Kind: KindRejectedClient, Status: status}
	case ClassServerError:
		return &Error{Stage: stage, Kind: KindRejectedServer, Status: status}
	default:
		return nil
	}
}
