//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitrevert/internal/domain/commands"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// StubDoctorCommand is a stub implementation of commands.Doctor.
type StubDoctorCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           entities.DoctorReport
	LastDir          string
}

var _ commands.Doctor = (*StubDoctorCommand)(nil)

func (s *StubDoctorCommand) Execute(_ context.Context, dir string) (entities.DoctorReport, error) {
	s.ExecuteCallCount++
	s.LastDir = dir
	return s.Report, s.ExecuteErr
}
