// Package httpx classifies upstream HTTP responses and tags call failures
// with the stage and cause, so a provider rejection, a malformed body and a
// connection failure stay distinguishable all the way up to the logs.
package httpx

// StatusClass is the range-based classification of a response status code.
type StatusClass int

const (
	ClassOK StatusClass = iota
	ClassClientError
	ClassServerError
)

// Classify maps a status code to its class: 2xx/3xx are OK, 4xx is a client
// error, 5xx is a server error.
func Classify(status int) StatusClass {
	switch {
	case status >= 500:
		return ClassServerError
	case status >= 400:
		return ClassClientError
	default:
		return ClassOK
	}
}
