// Package errors provides structured error types for dotagent.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for dotagent operations.
const (
	// Usage errors
	CodeUsageBadTarget = "USAGE_001" // Unrecognized target token

	// Source tree errors
	CodeSourceConfigMissing = "SRC_001" // Root config document missing
	CodeSourceDirMissing    = "SRC_002" // Required source directory missing

	// IO errors
	CodeIOCopy   = "IO_001" // Copy failed
	CodeIOBackup = "IO_002" // Backup rename failed
	CodeIOMkdir  = "IO_003" // Directory creation failed
	CodeIOScan   = "IO_004" // Destination scan failed
)

// InstallError is the structured error type for dotagent operations.
type InstallError struct {
	Code    string // Error code (e.g., "SRC_001")
	Message string // Human-readable message
	Cause   error  // Wrapped error (usually the raw filesystem error)
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *InstallError) Unwrap() error {
	return e.Cause
}

// New creates a new InstallError.
func New(code, message string) *InstallError {
	return &InstallError{Code: code, Message: message}
}

// Newf creates a new InstallError with a formatted message.
func Newf(code, format string, args ...any) *InstallError {
	return &InstallError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with an InstallError.
func Wrap(code, message string, err error) *InstallError {
	return &InstallError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an error with a formatted InstallError.
func Wrapf(code string, err error, format string, args ...any) *InstallError {
	return &InstallError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// UnknownTarget creates a usage error for an unrecognized target token.
// The message enumerates the valid tokens so the user can correct the call.
func UnknownTarget(token string, valid []string) *InstallError {
	return Newf(CodeUsageBadTarget, "unknown target %q: valid targets are %v", token, valid)
}

// SourceConfigMissing creates an error for a missing root config document.
func SourceConfigMissing(path string, err error) *InstallError {
	return Wrapf(CodeSourceConfigMissing, err, "root config document missing: %s", path)
}

// SourceDirMissing creates an error for a missing required source directory.
func SourceDirMissing(path string, err error) *InstallError {
	return Wrapf(CodeSourceDirMissing, err, "required source directory missing: %s", path)
}

// CopyFailed creates an error for a failed file copy.
func CopyFailed(dest string, err error) *InstallError {
	return Wrapf(CodeIOCopy, err, "copying to %s", dest)
}

// BackupFailed creates an error for a failed backup rename.
func BackupFailed(path string, err error) *InstallError {
	return Wrapf(CodeIOBackup, err, "backing up %s", path)
}

// MkdirFailed creates an error for a failed directory creation.
func MkdirFailed(path string, err error) *InstallError {
	return Wrapf(CodeIOMkdir, err, "creating directory %s", path)
}

// ScanFailed creates an error for a failed destination scan.
func ScanFailed(path string, err error) *InstallError {
	return Wrapf(CodeIOScan, err, "scanning %s", path)
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	var ie *InstallError
	if errors.As(err, &ie) {
		return ie.Code == CodeUsageBadTarget
	}
	return false
}
