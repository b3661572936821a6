package environment

import (
	"fmt"
	"strings"
)

// CreationFailedError is returned when the environment-creation primitive
// exited non-zero. AlreadyExisted records whether the root pre-existed, in
// which case it has not been cleaned up.
type CreationFailedError struct {
	Root           string
	ExitCode       int
	AlreadyExisted bool
}

func (e *CreationFailedError) Error() string {
	return fmt.Sprintf("environment creation failed at %v (exit code %v)", e.Root, e.ExitCode)
}

// InstallerFailedError is returned when the dependency installer is absent
// or broken after an install attempt.
type InstallerFailedError struct {
	Root string
	Err  error
}

func (e *InstallerFailedError) Error() string {
	return fmt.Sprintf("dependency installer failed in environment %v: %v", e.Root, e.Err)
}

func (e *InstallerFailedError) Unwrap() error {
	return e.Err
}

// RequirementsInstallationFailedError is returned when installing a
// requirement set failed. The environment itself still exists and stays
// usable; only this install attempt failed.
type RequirementsInstallationFailedError struct {
	Specs []string
	Err   error
}

func (e *RequirementsInstallationFailedError) Error() string {
	return fmt.Sprintf("failed installing requirements [%v]: %v", strings.Join(e.Specs, ", "), e.Err)
}

func (e *RequirementsInstallationFailedError) Unwrap() error {
	return e.Err
}
