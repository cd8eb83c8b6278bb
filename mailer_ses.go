package sesmail

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/aimoda/sesmail/ses"
)

type mailerSES struct {
	region   string
	creds    aws.Credentials
	endpoint string
	confSet  string
	httpC    *http.Client
	signer   *v4.Signer
	mod      func(*ses.SendEmailRequest)
}

func (m *mailerSES) Send(subject string, from mail.Address, parts ...Part) error {
	msg, to, err := message(subject, from, parts...)
	if err != nil {
		return err
	}

	// The full message goes in Content.Raw; Destination is still needed as
	// the envelope recipients (it's how Bcc works with raw content).
	req := ses.SendEmailRequest{
		FromEmailAddress: from.Address,
		Destination:      &ses.Destination{ToAddresses: to},
		Content: ses.EmailContent{Raw: &ses.RawMessage{
			Data: base64.StdEncoding.EncodeToString(msg),
		}},
		ConfigurationSetName: m.confSet,
	}
	if m.mod != nil {
		m.mod(&req)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("sesmail.mailerSES: %w", err)
	}

	r, err := http.NewRequest(http.MethodPost, m.endpoint+"/v2/email/outbound-emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sesmail.mailerSES: %w", err)
	}
	r.Header.Set("Content-Type", "application/json")

	hash := sha256.Sum256(body)
	err = m.signer.SignHTTP(context.Background(), m.creds, r,
		hex.EncodeToString(hash[:]), "ses", m.region, now())
	if err != nil {
		return fmt.Errorf("sesmail.mailerSES: sign: %w", err)
	}

	resp, err := m.httpC.Do(r)
	if err != nil {
		return fmt.Errorf("sesmail.mailerSES: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 { // Our work here is done.
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	sesErr := ses.Error{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Type:       resp.Header.Get("X-Amzn-Errortype"),
	}
	respBody, err := io.ReadAll(resp.Body)
	if err == nil { // Failure reading the error is non-fatal.
		_ = json.Unmarshal(respBody, &sesErr)
	}
	return sesErr
}
