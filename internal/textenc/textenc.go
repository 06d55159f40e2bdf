// Package textenc renders raw CHAR octets (attribute text, names) for human
// display. NetCDF classic text is just "bytes" with no declared charset; in
// practice most files are pure ASCII, but older tools sometimes wrote
// Latin-1/Windows-1252 octets above 0x7F. Decoding as that charmap instead
// of lossily substituting keeps diagnostic output readable either way.
package textenc

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Display decodes raw octets for diagnostic rendering (pkg/cdf.Describe,
// which backs the CLI dump output). ASCII input returns unchanged, since ASCII and Windows-1252
// agree below 0x80; anything with a high-bit octet is run through the
// Windows-1252 decoder.
func Display(octets []byte) (string, error) {
	if isASCII(octets) {
		return string(octets), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(octets)
	if err != nil {
		return "", fmt.Errorf("textenc: decode windows-1252: %w", err)
	}
	return string(decoded), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
