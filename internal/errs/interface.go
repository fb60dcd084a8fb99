package errs

// ErrorHandler separates what the caller is told (public) from what is only
// logged (private). Implementations decide the rendering.
type ErrorHandler interface {
	PublicError(statusCode int, err error)
	PrivateError(err error)
}
