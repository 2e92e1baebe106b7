package stream

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Mode validation errors returned by Open before any file is touched.
var (
	// ErrModeNotBinary is returned when a mode string lacks the "b"
	// marker required for binary streams.
	ErrModeNotBinary = errors.New("mode doesn't describe a binary file open mode")
	// ErrInvalidMode is returned when a mode string is malformed in
	// some other way (no base mode, conflicting or unknown letters).
	ErrInvalidMode = errors.New("invalid file open mode")
)

// parseMode maps a Python-style open mode string onto os.OpenFile
// flags. The string must contain exactly one of "r", "w", "a" or "x",
// the mandatory binary marker "b" and optionally "+", in any order:
// "rb", "wb+", "r+b" and so on.
func parseMode(mode string) (int, error) {
	if !strings.ContainsRune(mode, 'b') {
		return 0, fmt.Errorf("%w: %q", ErrModeNotBinary, mode)
	}
	var (
		base byte
		plus bool
		bin  bool
	)
	for i := 0; i < len(mode); i++ {
		switch c := mode[i]; c {
		case 'r', 'w', 'a', 'x':
			if base != 0 {
				return 0, fmt.Errorf("%w: %q has conflicting modes %q and %q",
					ErrInvalidMode, mode, base, c)
			}
			base = c
		case '+':
			if plus {
				return 0, fmt.Errorf("%w: %q repeats %q", ErrInvalidMode, mode, c)
			}
			plus = true
		case 'b':
			if bin {
				return 0, fmt.Errorf("%w: %q repeats %q", ErrInvalidMode, mode, c)
			}
			bin = true
		default:
			return 0, fmt.Errorf("%w: %q contains unknown mode character %q",
				ErrInvalidMode, mode, c)
		}
	}
	if base == 0 {
		return 0, fmt.Errorf("%w: %q has no base mode", ErrInvalidMode, mode)
	}

	var flag int
	switch base {
	case 'r':
		flag = os.O_RDONLY
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case 'x':
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	if plus {
		flag = (flag &^ (os.O_RDONLY | os.O_WRONLY)) | os.O_RDWR
	}
	return flag, nil
}

// ValidMode reports whether mode describes a binary file open mode
// accepted by Open.
func ValidMode(mode string) bool {
	_, err := parseMode(mode)
	return err == nil
}
