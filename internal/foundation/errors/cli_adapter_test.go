package errors

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("bad extension").Build(), expected: 2},
		{name: "not found error", err: NewError(CategoryNotFound, "missing").Build(), expected: 3},
		{name: "config error", err: ConfigError("bad config").Build(), expected: 7},
		{name: "filesystem error", err: NewError(CategoryFileSystem, "write failed").Build(), expected: 11},
		{name: "render error", err: NewError(CategoryRender, "render failed").Build(), expected: 11},
		{name: "internal error", err: NewError(CategoryInternal, "boom").Build(), expected: 10},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name: "names failing path",
			err: WrapError(errors.New("no such file or directory"), CategoryFileSystem, "posts directory not readable").
				WithContext("path", "missing/posts").
				Build(),
			contains: []string{"posts directory not readable", "(missing/posts)", "no such file or directory"},
		},
		{
			name:     "unclassified error",
			err:      &customError{msg: "unknown error"},
			contains: []string{"Error: unknown error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.FormatError(tt.err)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatError() = %q, want to contain %q", got, want)
				}
			}
		})
	}

	if got := adapter.FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty string", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(NewError(CategoryFileSystem, "failed to write artifact").WithContext("path", "public/index.html").Build())

	if code != 11 {
		t.Errorf("exit code = %d, want 11", code)
	}
	if !strings.Contains(out.String(), "public/index.html") {
		t.Errorf("output %q does not name the failing path", out.String())
	}

	code = -1
	adapter.HandleError(nil)
	if code != -1 {
		t.Error("HandleError(nil) must not exit")
	}
}

// customError is a test helper for unclassified errors
type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
