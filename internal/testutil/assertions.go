// Package testutil provides shared test helpers for dotagent.
package testutil

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"
)

// AssertEqual asserts that two values are equal.
func AssertEqual(t *testing.T, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := formatMessage("Expected values to be equal", msgAndArgs...)
		t.Errorf("%s\nExpected: %v\nActual: %v", msg, expected, actual)
	}
}

// AssertError asserts that an error is not nil.
func AssertError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		msg := formatMessage("Expected an error", msgAndArgs...)
		t.Errorf("%s", msg)
	}
}

// AssertNoError asserts that an error is nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		msg := formatMessage("Expected no error", msgAndArgs...)
		t.Errorf("%s\nError: %v", msg, err)
	}
}

// AssertErrorContains asserts that an error contains a substring.
func AssertErrorContains(t *testing.T, err error, substring string, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		msg := formatMessage("Expected an error containing "+substring, msgAndArgs...)
		t.Errorf("%s\nGot: nil", msg)
		return
	}
	if !strings.Contains(err.Error(), substring) {
		msg := formatMessage("Expected error to contain substring", msgAndArgs...)
		t.Errorf("%s\nSubstring: %q\nError: %v", msg, substring, err)
	}
}

// AssertContains asserts that a string contains a substring.
func AssertContains(t *testing.T, s, substring string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(s, substring) {
		msg := formatMessage("Expected string to contain substring", msgAndArgs...)
		t.Errorf("%s\nString: %q\nSubstring: %q", msg, s, substring)
	}
}

// AssertNotContains asserts that a string does not contain a substring.
func AssertNotContains(t *testing.T, s, substring string, msgAndArgs ...any) {
	t.Helper()
	if strings.Contains(s, substring) {
		msg := formatMessage("Expected string to not contain substring", msgAndArgs...)
		t.Errorf("%s\nString: %q\nSubstring: %q", msg, s, substring)
	}
}

// AssertFileExists asserts that a regular file exists at path.
func AssertFileExists(t *testing.T, path string, msgAndArgs ...any) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		msg := formatMessage("Expected file to exist", msgAndArgs...)
		t.Errorf("%s\nPath: %s\nError: %v", msg, path, err)
		return
	}
	if info.IsDir() {
		msg := formatMessage("Expected a file, found a directory", msgAndArgs...)
		t.Errorf("%s\nPath: %s", msg, path)
	}
}

// AssertNotExists asserts that nothing exists at path.
func AssertNotExists(t *testing.T, path string, msgAndArgs ...any) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		msg := formatMessage("Expected path to not exist", msgAndArgs...)
		t.Errorf("%s\nPath: %s", msg, path)
	}
}

// AssertFileContent asserts that a file exists and holds exactly content.
func AssertFileContent(t *testing.T, path, content string, msgAndArgs ...any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		msg := formatMessage("Expected readable file", msgAndArgs...)
		t.Errorf("%s\nPath: %s\nError: %v", msg, path, err)
		return
	}
	if string(data) != content {
		msg := formatMessage("File content mismatch", msgAndArgs...)
		t.Errorf("%s\nPath: %s\nExpected: %q\nActual: %q", msg, path, content, string(data))
	}
}

func formatMessage(defaultMsg string, msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return defaultMsg
	}
	if format, ok := msgAndArgs[0].(string); ok && len(msgAndArgs) > 1 {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
