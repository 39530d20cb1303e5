/*
package ucs2 converts between Go strings and the NUL-terminated UTF-16
strings of the firmware ABI. The transcoding itself is delegated to
golang.org/x/text; this package only fixes the byte order, the NUL
conventions and the []uint16 representation drivers trade in.
*/
package ucs2

import (
	"encoding/binary"
	"errors"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

var errOddLength = errors.New("UTF-16 byte length must be multiple of 2")

// Encode converts s to a freshly allocated NUL-terminated UTF-16 string.
func Encode(s string) ([]uint16, error) {
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	u := make([]uint16, len(b)/2+1) // trailing zero value is the NUL.
	for i := range u[:len(u)-1] {
		u[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return u, nil
}

// Decode converts UTF-16 units to a Go string, stopping at the first NUL.
func Decode(u []uint16) (string, error) {
	for i, c := range u {
		if c == 0 {
			u = u[:i]
			break
		}
	}
	b := make([]byte, 2*len(u))
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeBytes converts raw UTF-16LE value bytes, as returned by the firmware
// variable store, to a Go string. Decoding stops at the first NUL unit.
func DecodeBytes(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errOddLength
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
