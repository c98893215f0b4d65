// Package textenc normalises strings received from game servers. Most
// Chinese servers speak GBK on the wire; everything inside this process is
// UTF-8.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// Converter normalises wire strings according to the configured encoding.
type Converter struct {
	gbk bool
}

// New returns a converter for the given wire encoding name. Only "GBK" is
// treated specially; anything else passes strings through untouched.
func New(encoding string) *Converter {
	return &Converter{gbk: encoding == "GBK" || encoding == "gbk"}
}

// EnsureUTF8 returns s as valid UTF-8. Already-valid input is returned as
// is; otherwise a GBK decode is attempted, falling back to replacing the
// invalid sequences.
func (c *Converter) EnsureUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	if c.gbk {
		if out, err := simplifiedchinese.GBK.NewDecoder().String(s); err == nil {
			return out
		}
	}
	return string([]rune(s))
}

// Encode converts a UTF-8 string to the wire encoding for outbound chat.
func (c *Converter) Encode(s string) string {
	if !c.gbk {
		return s
	}
	out, err := simplifiedchinese.GBK.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return out
}
