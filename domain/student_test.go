package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase is folded", input: "std42", expected: "STD42"},
		{name: "already normalized", input: "STD42", expected: "STD42"},
		{name: "surrounding whitespace is stripped", input: "  std42  ", expected: "STD42"},
		{name: "mixed case and tabs", input: "\tStD42\n", expected: "STD42"},
		{name: "blank collapses to empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, NormalizeID(tt.input))
		})
	}
}

func TestNewStudent(t *testing.T) {
	req := require.New(t)

	student := NewStudent("  Alice ", " std42 ")

	req.Equal("Alice", student.DisplayName)
	req.Equal("std42", student.ID)
	req.Equal("STD42", student.NormalizedID)
	req.Equal("Alice (STD42)", student.Display())
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		request RegistrationRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: RegistrationRequest{Name: "Alice", UID: "std42"},
			wantErr: false,
		},
		{
			name:    "missing name",
			request: RegistrationRequest{UID: "std42"},
			wantErr: true,
		},
		{
			name:    "missing uid",
			request: RegistrationRequest{Name: "Alice"},
			wantErr: true,
		},
		{
			name:    "name too long",
			request: RegistrationRequest{Name: strings.Repeat("a", 65), UID: "std42"},
			wantErr: true,
		},
		{
			name:    "uid too long",
			request: RegistrationRequest{Name: "Alice", UID: strings.Repeat("b", 33)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.request)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
