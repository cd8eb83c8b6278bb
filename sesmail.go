// Package sesmail composes email messages and sends them through Amazon SES.
package sesmail

// This file contains the public API to create messages.

import (
	"fmt"
	"net/mail"
)

// Part is one part of a message: a body, recipients, or headers.
type Part interface {
	sesmail()
	Error() error
}

// Body returns a new text part with the given Content-Type.
func Body(contentType string, body []byte) BodyPart {
	return BodyPart{ct: contentType, body: body}
}

// Bodyf returns a new text/plain part.
func Bodyf(s string, args ...interface{}) BodyPart {
	return BodyText([]byte(fmt.Sprintf(s, args...)))
}

// BodyText returns a new text/plain part.
func BodyText(body []byte) BodyPart { return Body("text/plain", body) }

// BodyHTML returns a new text/html part.
func BodyHTML(body []byte) BodyPart { return Body("text/html", body) }

// BodyMust sets the body using a callback, propagating any errors back up.
//
// This is useful when using Go templates for the mail body; instead of
// checking the template error at every call site, define a little helper and
// let Message() report it:
//
//	func template(tplname string, args interface{}) func() ([]byte, error) {
//	    return func() ([]byte, error) {
//	        buf := new(bytes.Buffer)
//	        err := tpl.ExecuteTemplate(buf, tplname, args)
//	        return buf.Bytes(), err
//	    }
//	}
//
//	msg, to, err := Message("Hi there", From("", "me@example.com"),
//	    To("to@example.com"),
//	    BodyMust("text/html", template("email", struct {
//	        Name string
//	    }{"Martin"})))
func BodyMust(contentType string, fn func() ([]byte, error)) BodyPart {
	body, err := fn()
	return BodyPart{ct: contentType, err: err, body: body}
}

// BodyMustText is like BodyMust() with contentType text/plain.
func BodyMustText(fn func() ([]byte, error)) BodyPart {
	return BodyMust("text/plain", fn)
}

// BodyMustHTML is like BodyMust() with contentType text/html.
func BodyMustHTML(fn func() ([]byte, error)) BodyPart {
	return BodyMust("text/html", fn)
}

// Headers adds the headers to the message.
//
// This will override any headers set automatically by the system, such as
// Date: or Message-Id:
//
//	Headers("My-Header", "value",
//	    "Message-Id", "<my-message-id@example.com>")
func Headers(keyValue ...string) HeaderPart {
	return HeaderPart{}.FromList(keyValue)
}

// HeadersAutoreply sets headers to indicate this message is an autoreply.
func HeadersAutoreply() HeaderPart {
	return Headers("Auto-Submitted", "auto-replied",
		"X-Auto-Response-Suppress", "All",
		"Precedence", "auto_reply")
}

// From makes creating a mail.Address a bit more convenient:
//
//	mail.Address{Name: "foo", Address: "foo@example.com"}
//	sesmail.From("foo", "foo@example.com")
func From(name, address string) mail.Address {
	return mail.Address{Name: name, Address: address}
}

// To sets the To: from a list of email addresses.
func To(addr ...string) RcptParts  { return rcptList(rcptTo, addr) }
func Cc(addr ...string) RcptParts  { return rcptList(rcptCc, addr) }
func Bcc(addr ...string) RcptParts { return rcptList(rcptBcc, addr) }

// ToAddress sets the To: from a list of mail.Addresses.
func ToAddress(addr ...mail.Address) RcptParts  { return rcptAddr(rcptTo, addr) }
func CcAddress(addr ...mail.Address) RcptParts  { return rcptAddr(rcptCc, addr) }
func BccAddress(addr ...mail.Address) RcptParts { return rcptAddr(rcptBcc, addr) }

// ToNames sets the To: from a list of "name", "addr" arguments.
func ToNames(nameAddr ...string) RcptParts  { return rcptNames(rcptTo, nameAddr) }
func CcNames(nameAddr ...string) RcptParts  { return rcptNames(rcptCc, nameAddr) }
func BccNames(nameAddr ...string) RcptParts { return rcptNames(rcptBcc, nameAddr) }

// Message formats a message, returning the raw message and the list of
// addresses it should be delivered to.
func Message(subject string, from mail.Address, parts ...Part) ([]byte, []string, error) {
	return message(subject, from, parts...)
}
