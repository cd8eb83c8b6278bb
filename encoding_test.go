package sesmail

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestSafe7bit(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"\n", true},
		{"\r\n\r\n", true},
		{"Hello, world", true},
		{"hello\nworld\n", true},
		{"hello\r\nworld", true},
		{"hello\rworld", true}, // A lone CR is not a line separator.
		{"mixed\nline\r\nendings\n", true},
		{"\x7f", true},
		{"\x80", false},
		{"é", false},
		{"caf\u00e9", false},
		{"short line\nbut é here\n", false},
		{strings.Repeat("a", 998), true},
		{strings.Repeat("a", 999), false},
		{strings.Repeat("a", 998) + "\n", true},
		{strings.Repeat("a", 998) + "\r\n", true},
		{strings.Repeat("a", 998) + "\nshort", true},
		{strings.Repeat("a", 998) + "\r\n" + strings.Repeat("b", 999), false},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			have := Safe7bit(tt.in)
			if have != tt.want {
				t.Errorf("Safe7bit(%q) = %v; want %v", tt.in, have, tt.want)
			}
		})
	}
}

func TestQuotedPrintable(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Hello, world", "Hello, world"},
		{"Hello=there", "Hello=3Dthere"},
		{"=", "=3D"},
		{"a \n", "a=20\n"},
		{"a \r\n", "a=20\r\n"},
		{"a\t", "a=09"},
		{"a ", "a=20"},
		{"a  b", "a  b"},
		{"tab\tinside", "tab\tinside"},
		{"line \nline2", "line=20\nline2"},
		{"ends.\n", "ends.\n"},
		{"caf\u00e9", "caf=C3=A9"},
		{"\x00\x01", "=00=01"},
		{"<html>", "<html>"},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			have := QuotedPrintable([]byte(tt.in))
			if have != tt.want {
				t.Errorf("\nhave: %q\nwant: %q", have, tt.want)
			}

			// Identical input yields byte-identical output.
			if again := QuotedPrintable([]byte(tt.in)); again != have {
				t.Errorf("not deterministic: %q then %q", have, again)
			}
		})
	}
}

// Every byte outside the literal set shows up escaped, never bare; everything
// inside it passes through when it's not trailing whitespace.
func TestQuotedPrintableEscapes(t *testing.T) {
	for c := 0; c <= 0xff; c++ {
		in := []byte{'x', byte(c), 'x'}
		have := QuotedPrintable(in)

		literal := c == 0x09 || c == 0x0a || c == 0x0d ||
			(c >= 0x20 && c <= 0x3c) || (c >= 0x3e && c <= 0x7e)
		want := fmt.Sprintf("x=%02Xx", c)
		if literal {
			want = string(in)
		}
		if have != want {
			t.Errorf("byte %#02x:\nhave: %q\nwant: %q", c, have, want)
		}
	}
}

func decodeQP(t *testing.T, s string) []byte {
	t.Helper()
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] != '=' {
			out = append(out, s[i])
			continue
		}
		b, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			t.Fatalf("bad escape at %d in %q: %s", i, s, err)
		}
		out = append(out, byte(b))
		i += 2
	}
	return out
}

func TestQuotedPrintableRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	tests := [][]byte{
		nil,
		[]byte("plain text"),
		[]byte("é è ü\r\n"),
		[]byte("a \n"),
		[]byte("=3D already encoded"),
		[]byte("trailing \t\r\n mix \n"),
		all,
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			dec := decodeQP(t, QuotedPrintable(tt))
			if !bytes.Equal(dec, tt) {
				t.Errorf("\nhave: %q\nwant: %q", dec, tt)
			}
		})
	}
}

func TestEncodeBody(t *testing.T) {
	tests := []struct {
		text, ct string
		wantEnc  Encoding
		wantData string
	}{
		{"hello", "text/plain", Enc7bit, "hello"},
		{"", "text/html", Enc7bit, ""},
		{"h\u00e9llo", "text/plain", EncQuotedPrintable, "h=C3=A9llo"},
		{"<b>caf\u00e9</b>", "text/html", EncQuotedPrintable, "<b>caf=C3=A9</b>"},

		// Over-long ASCII line: still quoted-printable, even though the
		// escaping itself changes nothing.
		{strings.Repeat("a", 999), "text/plain", EncQuotedPrintable, strings.Repeat("a", 999)},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			have := EncodeBody(tt.text, tt.ct)
			if have.Encoding != tt.wantEnc {
				t.Errorf("encoding %q; want %q", have.Encoding, tt.wantEnc)
			}
			if have.Data != tt.wantData {
				t.Errorf("\nhave: %q\nwant: %q", have.Data, tt.wantData)
			}
			if have.Charset != "utf-8" {
				t.Errorf("charset %q", have.Charset)
			}
			if have.ContentType != tt.ct {
				t.Errorf("content type %q; want %q", have.ContentType, tt.ct)
			}
		})
	}
}
