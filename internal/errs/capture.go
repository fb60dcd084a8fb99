package errs

// CaptureErrorHandler records errors for inspection in tests.
type CaptureErrorHandler struct {
	StatusCode int
	Public     []error
	Private    []error
}

func NewCapturingErrorHandler() *CaptureErrorHandler {
	return &CaptureErrorHandler{}
}

func (e *CaptureErrorHandler) PublicError(statusCode int, err error) {
	e.StatusCode = statusCode
	e.Public = append(e.Public, err)
}

func (e *CaptureErrorHandler) PrivateError(err error) {
	e.Private = append(e.Private, err)
}
