package sesmail

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"net/textproto"
)

const (
	rcptTo  = "to"
	rcptCc  = "cc"
	rcptBcc = "bcc"
)

// RcptPart is someone to send the message to. Create a new one with the To*,
// Cc*, or Bcc* functions.
type RcptPart struct {
	err error

	kind string // to, cc, bcc
	mail.Address
}

func (RcptPart) sesmail()         {}
func (p RcptPart) Error() error   { return p.err }
func (p RcptPart) String() string { return p.kind + ": " + p.Name + "<" + p.Address.Address + ">" }

type RcptParts []RcptPart

func (RcptParts) sesmail() {}
func (p RcptParts) Error() error {
	for _, pp := range p {
		if pp.err != nil {
			return pp.err
		}
	}
	return nil
}

func writeRcpt(w io.Writer, key string, addr ...mail.Address) {
	if len(addr) == 0 {
		return
	}
	fmt.Fprintf(w, "%s: ", textproto.CanonicalMIMEHeaderKey(key))
	for i, a := range addr {
		fmt.Fprint(w, a.String())
		if i != len(addr)-1 {
			w.Write([]byte(", "))
		}
	}
	w.Write([]byte("\r\n"))
}

func rcptNames(kind string, nameAddr []string) RcptParts {
	if len(nameAddr)%2 == 1 {
		return RcptParts{{err: errors.New("sesmail: odd argument count")}}
	}

	r := make(RcptParts, len(nameAddr)/2)
	for i := range nameAddr {
		if i%2 == 1 {
			continue
		}
		r[i/2] = RcptPart{kind: kind, Address: mail.Address{Name: nameAddr[i], Address: nameAddr[i+1]}}
	}
	return r
}

func rcptAddr(kind string, addr []mail.Address) RcptParts {
	r := make(RcptParts, len(addr))
	for i := range addr {
		r[i] = RcptPart{kind: kind, Address: addr[i]}
	}
	return r
}

func rcptList(kind string, addr []string) RcptParts {
	r := make(RcptParts, len(addr))
	for i := range addr {
		r[i] = RcptPart{kind: kind, Address: mail.Address{Address: addr[i]}}
	}
	return r
}
