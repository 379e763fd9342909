package email

import (
	"bytes"
	"context"
	"text/template"

	"careerlink/internal/logger"
)

var templates = template.Must(template.New("notifications").Parse(`
{{define "welcome"}}Hi {{.Username}},

Welcome to CareerLink! Your {{.Role}} account is ready.
{{end}}
{{define "new_application"}}Hi {{.EmployerName}},

{{.ApplicantName}} applied to "{{.JobTitle}}".
{{end}}
{{define "status_changed"}}Hi {{.ApplicantName}},

Your application for "{{.JobTitle}}" is now {{.Status}}.
{{end}}
`))

// Notifier sends the product's transactional emails. Delivery failures are
// logged and swallowed so they never fail the request that triggered them.
type Notifier struct {
	provider Provider
}

func NewNotifier(provider Provider) *Notifier {
	return &Notifier{provider: provider}
}

func (n *Notifier) Welcome(ctx context.Context, to, username, role string) {
	n.send(ctx, to, "Welcome to CareerLink", "welcome", TemplateData{
		"Username": username,
		"Role":     role,
	})
}

func (n *Notifier) NewApplication(ctx context.Context, to, employerName, applicantName, jobTitle string) {
	n.send(ctx, to, "New application: "+jobTitle, "new_application", TemplateData{
		"EmployerName":  employerName,
		"ApplicantName": applicantName,
		"JobTitle":      jobTitle,
	})
}

func (n *Notifier) StatusChanged(ctx context.Context, to, applicantName, jobTitle, status string) {
	n.send(ctx, to, "Application update: "+jobTitle, "status_changed", TemplateData{
		"ApplicantName": applicantName,
		"JobTitle":      jobTitle,
		"Status":        status,
	})
}

func (n *Notifier) send(ctx context.Context, to, subject, templateName string, data TemplateData) {
	if to == "" {
		return
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName, data); err != nil {
		logger.CtxWithError(ctx, "failed to render email", err, "template", templateName)
		return
	}

	err := n.provider.Send(ctx, &Email{
		To:      []string{to},
		Subject: subject,
		Body:    body.String(),
	})
	if err != nil {
		logger.CtxWithError(ctx, "failed to send email", err, "template", templateName)
	}
}
