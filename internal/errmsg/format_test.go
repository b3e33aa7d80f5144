//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFetchImages,
			err:      nil,
			expected: "",
		},
		{
			name:     "fetch operation",
			op:       OpFetchImages,
			err:      errors.New("connection refused"),
			expected: "Failed to fetch images: connection refused",
		},
		{
			name:     "image load operation",
			op:       OpLoadImage,
			err:      errors.New("unexpected status: 404 Not Found"),
			expected: "Failed to load image: unexpected status: 404 Not Found",
		},
		{
			name:     "history operation",
			op:       OpLoadHistory,
			err:      errors.New("database is locked"),
			expected: "Failed to load search history: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFetchImages,
			context:  "dog",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpFetchImages,
			context:  "",
			err:      errors.New("timeout"),
			expected: "Failed to fetch images: timeout",
		},
		{
			name:     "includes context",
			op:       OpFetchImages,
			context:  "mountains",
			err:      errors.New("timeout"),
			expected: "Failed to fetch images 'mountains': timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
