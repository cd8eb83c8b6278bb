package sesmail

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

// Allow swapping out in tests.
var (
	now          = func() time.Time { return time.Now() }
	testBoundary = ""
	testRandom   = func() uint64 {
		r, _ := rand.Int(rand.Reader, big.NewInt(0).SetUint64(999_999))
		return r.Uint64()
	}
)

func splitParts(parts []Part) ([]BodyPart, RcptParts, HeaderPart) {
	var (
		b []BodyPart
		r RcptParts
		h HeaderPart
	)
	for _, p := range parts {
		switch pp := p.(type) {
		case BodyPart:
			b = append(b, pp)
		case RcptPart:
			r = append(r, pp)
		case RcptParts:
			r = append(r, pp...)
		case HeaderPart:
			h.Append(pp)
		default: // Should never happen.
			panic(fmt.Sprintf("splitParts: %T", pp))
		}
	}
	return b, r, h
}

func message(subject string, from mail.Address, parts ...Part) ([]byte, []string, error) {
	// Propagate any errors from the parts.
	for i, p := range parts {
		if p.Error() != nil {
			return nil, nil, fmt.Errorf("sesmail.Message part %d: %w", i+1, p.Error())
		}
	}

	allBody, rcpt, headers := splitParts(parts)

	// Absent bodies are dropped, not turned into empty MIME parts.
	var body []BodyPart
	for _, p := range allBody {
		if !p.absent() {
			body = append(body, p)
		}
	}

	if len(rcpt) == 0 {
		return nil, nil, errors.New("sesmail.Message: need at least one recipient")
	}
	if len(body) == 0 {
		return nil, nil, errors.New("sesmail.Message: need at least one body part")
	}

	msg := new(bytes.Buffer)

	// Write address headers.
	var toList []string
	{
		writeRcpt(msg, "From", from)

		var to, cc, bcc []mail.Address
		for _, r := range rcpt {
			toList = append(toList, r.Address.Address)
			switch r.kind {
			case rcptTo:
				to = append(to, r.Address)
			case rcptCc:
				cc = append(cc, r.Address)
			case rcptBcc:
				bcc = append(bcc, r.Address)
			}
		}

		writeRcpt(msg, "To", to...)
		writeRcpt(msg, "Cc", cc...)
		if len(to) == 0 && len(bcc) > 0 {
			headers.WriteDefault(msg, "To", "undisclosed-recipients:;")
		}
	}

	// Write other headers.
	{
		t := now()
		headers.WriteDefault(msg, "Message-Id", fmt.Sprintf("<sesmail-%s-%s@%s>",
			t.UTC().Format("20060102150405.0000"),
			strconv.FormatUint(testRandom(), 36),
			from.Address[strings.Index(from.Address, "@")+1:]))
		headers.WriteDefault(msg, "Date", t.Format(time.RFC1123Z))
		headers.WriteDefault(msg, "Subject", subject)
		headers.Write(msg)
	}

	// With just one part we don't need to bother with MIME: write out the
	// headers and the encoded body and be done.
	if len(body) == 1 {
		enc := body[0].encode()
		fmt.Fprintf(msg, "Content-Type: %s; charset=%s\r\n", enc.ContentType, enc.Charset)
		fmt.Fprintf(msg, "Content-Transfer-Encoding: %s\r\n", enc.Encoding)
		msg.WriteString("\r\n")
		msg.WriteString(enc.Data)

		return msg.Bytes(), toList, nil
	}

	// Multiple variants of the same content: multipart/alternative.
	w := multipart.NewWriter(msg)
	if testBoundary != "" {
		if err := w.SetBoundary(testBoundary); err != nil {
			return nil, nil, fmt.Errorf("sesmail.Message: %w", err)
		}
	}

	fmt.Fprint(msg, "Mime-Version: 1.0\r\n")
	fmt.Fprintf(msg, "Content-Type: multipart/alternative;\r\n\tboundary=\"%s\"\r\n\r\n", w.Boundary())

	for _, p := range body {
		enc := p.encode()
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {enc.ContentType + "; charset=" + enc.Charset},
			"Content-Transfer-Encoding": {string(enc.Encoding)},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("sesmail.Message: %w", err)
		}
		io.WriteString(part, enc.Data)
	}
	w.Close()

	return msg.Bytes(), toList, nil
}
