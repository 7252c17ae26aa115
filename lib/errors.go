// errors.go - error kinds of shakebytes.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of shakebytes, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package shakebytes

import "github.com/pkg/errors"

var (
	// ErrUsage marks missing or malformed command-line input.
	ErrUsage = errors.New("usage error")
	// ErrEncoding marks a message that is not valid UTF-8 text.
	ErrEncoding = errors.New("message is not valid UTF-8")
	// ErrAbsorbAfterSqueeze is returned by Absorb once output has been read.
	ErrAbsorbAfterSqueeze = errors.New("absorb after squeeze")
)

// IsUsage reports whether err is caused by bad input rather than by I/O.
func IsUsage(err error) bool {
	switch errors.Cause(err) {
	case ErrUsage, ErrEncoding:
		return true
	}
	return false
}
