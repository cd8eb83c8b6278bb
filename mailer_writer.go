package sesmail

import (
	"fmt"
	"io"
	"net/mail"
	"sync"
)

type mailerWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (m *mailerWriter) Send(subject string, from mail.Address, parts ...Part) error {
	msg, _, err := message(subject, from, parts...)
	if err != nil {
		return err
	}

	m.mu.Lock()
	fmt.Fprint(m.w, string(msg))
	fmt.Fprintln(m.w)
	m.mu.Unlock()
	return nil
}
