package sesmail

import (
	"errors"
	"fmt"
	"net/mail"
	"net/smtp"

	"github.com/emersion/go-sasl"
)

type mailerRelay struct {
	auth           string
	host, user, pw string
}

func (m *mailerRelay) saslClient() (sasl.Client, error) {
	switch m.auth {
	case "", AuthPlain:
		return sasl.NewPlainClient("", m.user, m.pw), nil
	case AuthLogin:
		return sasl.NewLoginClient(m.user, m.pw), nil
	}
	return nil, fmt.Errorf("sesmail.mailerRelay: unknown auth method %q", m.auth)
}

func (m *mailerRelay) Send(subject string, from mail.Address, parts ...Part) error {
	msg, to, err := message(subject, from, parts...)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if m.user != "" {
		c, err := m.saslClient()
		if err != nil {
			return err
		}
		auth = saslAuth{c}
	}

	err = smtp.SendMail(m.host, auth, from.Address, to, msg)
	if err != nil {
		return fmt.Errorf("sesmail.mailerRelay: %w", err)
	}
	return nil
}

// saslAuth drives a go-sasl client through the net/smtp Auth interface.
type saslAuth struct{ client sasl.Client }

func (a saslAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	// The mechanisms we support send the password in the clear.
	if !server.TLS && !isLocalhost(server.Name) {
		return "", nil, errors.New("sesmail: refusing plaintext auth to remote host")
	}
	return a.client.Start()
}

func (a saslAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		return a.client.Next(fromServer)
	}
	return nil, nil
}

func isLocalhost(name string) bool {
	return name == "localhost" || name == "127.0.0.1" || name == "::1"
}
