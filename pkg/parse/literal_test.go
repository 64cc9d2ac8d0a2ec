package parse

import (
	"testing"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
)

func TestParseInt16(t *testing.T) {
	tests := []struct {
		literal string
		want    int16
		code    errs.Code
	}{
		{"0", 0, ""},
		{"+12", 12, ""},
		{"-1", -1, ""},
		{"32767", 32767, ""},
		{"-32768", -32768, ""},
		{"32768", 0, errs.ErrCodeCoordinateOutOfRange},
		{"-32769", 0, errs.ErrCodeCoordinateOutOfRange},
		{"a", 0, errs.ErrCodeMalformedLine},
		{"", 0, errs.ErrCodeMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := ParseInt16(tt.literal, 9)
			if code := errs.GetCode(err); code != tt.code {
				t.Fatalf("ParseInt16(%q) code = %q, want %q", tt.literal, code, tt.code)
			}
			if err != nil {
				if line, _ := errs.LineOf(err); line != 9 {
					t.Errorf("line = %d, want 9", line)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseInt16(%q) = %d, want %d", tt.literal, got, tt.want)
			}
		})
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		text string
		ok   bool
	}{
		{"#Life 1.05", true},
		{"#Life1.05", true},
		{"#Life \t 1.05 ", true},
		{"#Life 1.06", false},
		{"#Life 1.05.1", false},
		{"#life 1.05", false},
		{"#Life", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			err := CheckVersion(tt.text, 1, "1.05")
			if tt.ok && err != nil {
				t.Errorf("CheckVersion(%q) = %v, want nil", tt.text, err)
			}
			if !tt.ok && !errs.Is(err, errs.ErrCodeInvalidFileFormat) {
				t.Errorf("CheckVersion(%q) = %v, want INVALID_FILE_FORMAT", tt.text, err)
			}
		})
	}
}
