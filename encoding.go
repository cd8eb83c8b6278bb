package sesmail

// This file decides how a text body travels: unchanged under 7bit, or escaped
// as quoted-printable when it contains bytes a 7bit transport would mangle.

import "strings"

// Encoding is a MIME Content-Transfer-Encoding value.
type Encoding string

const (
	Enc7bit            Encoding = "7bit"
	EncQuotedPrintable Encoding = "quoted-printable"
)

// maxLineLen is the longest line a 7bit transport accepts, excluding the line
// terminator (RFC 2822).
const maxLineLen = 998

// byteRange is an inclusive range of byte values; lo == hi for a single byte.
type byteRange struct{ lo, hi byte }

func (r byteRange) contains(c byte) bool { return c >= r.lo && c <= r.hi }

// Bytes quoted-printable passes through unescaped. Tab, LF, and CR are
// structural line bytes; 0x3d ("=") introduces escapes and is always escaped
// itself.
var qpLiteral = []byteRange{
	{0x09, 0x09}, // tab
	{0x0a, 0x0a}, // LF
	{0x0d, 0x0d}, // CR
	{0x20, 0x3c}, // space .. "<"
	{0x3e, 0x7e}, // ">" .. "~"
}

func qpSafe(c byte) bool {
	for _, r := range qpLiteral {
		if r.contains(c) {
			return true
		}
	}
	return false
}

// Safe7bit reports whether text can be transmitted as-is with a 7bit
// Content-Transfer-Encoding: nothing outside ASCII, and no line longer than
// 998 bytes. Lines may end in LF or CRLF; both are accepted, also mixed.
func Safe7bit(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7f {
			return false
		}
	}
	for rest := text; rest != ""; {
		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			rest = ""
		}
		if len(strings.TrimSuffix(line, "\r")) > maxLineLen {
			return false
		}
	}
	return true
}

const upperhex = "0123456789ABCDEF"

// QuotedPrintable encodes data as quoted-printable, without inserting soft
// line breaks: existing CR and LF bytes pass through, everything outside the
// literal set becomes "=XY". Trailing whitespace is escaped so line-oriented
// transports can't strip it.
//
// This is not mime/quotedprintable: that writer wraps lines at 76 columns and
// ends trailing whitespace with "=\r\n", neither of which we want when the
// message already has its own line structure.
func QuotedPrintable(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for i, c := range data {
		if qpSafe(c) && !trailingWS(data, i) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('=')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// A space or tab is "trailing" when it ends the buffer or sits directly
// before a line break.
func trailingWS(data []byte, i int) bool {
	if c := data[i]; c != ' ' && c != '\t' {
		return false
	}
	return i == len(data)-1 || data[i+1] == '\n' || data[i+1] == '\r'
}

// BodyEncoding is the transfer-encoding decision for one body part.
type BodyEncoding struct {
	Data        string
	Encoding    Encoding
	Charset     string // Always utf-8.
	ContentType string
}

// EncodeBody decides how to transport one body part: 7bit-clean text is
// passed through unchanged, everything else is quoted-printable encoded.
func EncodeBody(text, contentType string) BodyEncoding {
	enc := BodyEncoding{Data: text, Encoding: Enc7bit, Charset: "utf-8", ContentType: contentType}
	if !Safe7bit(text) {
		enc.Data = QuotedPrintable([]byte(text))
		enc.Encoding = EncQuotedPrintable
	}
	return enc
}
