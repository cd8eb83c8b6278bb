package sesmail

// BodyPart is one text body of the message. Create a new one with one of the
// Body* functions.
type BodyPart struct {
	err  error
	ct   string
	body []byte
}

func (BodyPart) sesmail()       {}
func (p BodyPart) Error() error { return p.err }

// A nil body means the caller had nothing for this part; Message() skips it
// entirely. An empty non-nil body is a present, empty part.
func (p BodyPart) absent() bool { return p.body == nil }

func (p BodyPart) encode() BodyEncoding {
	return EncodeBody(string(p.body), p.ct)
}
