package email

// Email is a single outgoing message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the notification templates.
type TemplateData map[string]interface{}
