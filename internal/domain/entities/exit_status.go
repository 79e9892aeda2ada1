package entities

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitStatus collects the process exit code while controllers run. Controllers
// report problems through the logger and mark the status as failed.
type ExitStatus struct {
	code int
}

// NewExitStatus creates a successful ExitStatus.
func NewExitStatus() *ExitStatus {
	return &ExitStatus{code: ExitSuccess}
}

// Fail marks the invocation as failed.
func (s *ExitStatus) Fail() {
	s.code = ExitFailure
}

// Code returns the exit code to terminate the process with.
func (s *ExitStatus) Code() int {
	return s.code
}
