package delivery

// CaptureSink records the terminal response for inspection in tests.
type CaptureSink struct {
	StatusCode  int
	Err         error
	ContentType string
	Disposition string
	Body        []byte
	FilePath    string
	sent        bool
}

func NewCaptureSink() *CaptureSink {
	return &CaptureSink{StatusCode: 200}
}

func (s *CaptureSink) Sent() bool {
	return s.sent
}

func (s *CaptureSink) Error(statusCode int, err error) {
	if s.sent {
		return
	}
	s.sent = true
	s.StatusCode = statusCode
	s.Err = err
}

func (s *CaptureSink) Data(contentType, disposition string, data []byte) {
	if s.sent {
		return
	}
	s.sent = true
	s.ContentType = contentType
	s.Disposition = disposition
	s.Body = data
}

func (s *CaptureSink) File(contentType, disposition, path string) error {
	if s.sent {
		return nil
	}
	s.sent = true
	s.ContentType = contentType
	s.Disposition = disposition
	s.FilePath = path
	return nil
}
