package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either the rendered Subject/Text/HTML are set, or Template and Data are,
// in which case the worker renders before sending.
type EmailJob struct {
	To       string         `json:"to"`
	From     string         `json:"from,omitempty"`
	ReplyTo  string         `json:"reply_to,omitempty"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "contact_notification"
	Data     map[string]any `json:"data,omitempty"`
}

// Message converts a rendered job into a Message.
func (j EmailJob) Message() Message {
	return Message{From: j.From, To: j.To, ReplyTo: j.ReplyTo, Subject: j.Subject, Text: j.Text, HTML: j.HTML}
}
