// Package ses contains types for the Amazon SES v2 API.
package ses

var _ error = Error{}

// https://docs.aws.amazon.com/ses/latest/APIReference-V2/API_SendEmail.html
type (
	SendEmailRequest struct {
		FromEmailAddress     string       `json:"FromEmailAddress,omitempty"`
		Destination          *Destination `json:"Destination,omitempty"`
		ReplyToAddresses     []string     `json:"ReplyToAddresses,omitempty"`
		Content              EmailContent `json:"Content"`
		ConfigurationSetName string       `json:"ConfigurationSetName,omitempty"`
		EmailTags            []Tag        `json:"EmailTags,omitempty"`
	}

	Destination struct {
		ToAddresses  []string `json:"ToAddresses,omitempty"`
		CcAddresses  []string `json:"CcAddresses,omitempty"`
		BccAddresses []string `json:"BccAddresses,omitempty"`
	}

	// Exactly one of Raw, Simple, or Template must be set.
	EmailContent struct {
		Raw      *RawMessage    `json:"Raw,omitempty"`
		Simple   *SimpleMessage `json:"Simple,omitempty"`
		Template *Template      `json:"Template,omitempty"`
	}

	// RawMessage carries the full MIME message, base64-encoded.
	RawMessage struct {
		Data string `json:"Data"`
	}

	SimpleMessage struct {
		Subject Content  `json:"Subject"`
		Body    Body     `json:"Body"`
		Headers []Header `json:"Headers,omitempty"`
	}

	Body struct {
		Text *Content `json:"Text,omitempty"`
		Html *Content `json:"Html,omitempty"`
	}

	Content struct {
		Data    string `json:"Data"`
		Charset string `json:"Charset,omitempty"`
	}

	Header struct {
		Name  string `json:"Name"`
		Value string `json:"Value"`
	}

	Template struct {
		TemplateName string `json:"TemplateName,omitempty"`
		TemplateArn  string `json:"TemplateArn,omitempty"`
		TemplateData string `json:"TemplateData,omitempty"`
	}

	Tag struct {
		Name  string `json:"Name"`
		Value string `json:"Value"`
	}

	SendEmailResponse struct {
		MessageId string `json:"MessageId"`
	}

	Error struct {
		Status     string `json:"-"`
		StatusCode int    `json:"-"`
		Type       string `json:"-"` // From the X-Amzn-Errortype header.

		Message string `json:"message"`
	}
)

func (e Error) Error() string {
	s := e.Status
	if e.Type != "" {
		s += ": " + e.Type
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}
