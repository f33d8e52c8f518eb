package contact

import (
	"bytes"
	"context"
	"net/smtp"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

var inboxBody = template.Must(template.New("inbox").Parse(`
New contact form submission from your portfolio:

Name: {{.FromName}}
Email: {{.FromEmail}}
Subject: {{.Subject}}
Message:
{{.Message}}

---
Sent from your portfolio contact form
`))

var autoReplyBody = template.Must(template.New("autoreply").Parse(`
Hi {{.FromName}},

{{.Message}}

Your message: "{{.Subject}}"
`))

// SMTPRelay delivers mail directly over SMTP. Template ids map to plain-text bodies;
// an unknown id falls back to the inbox layout.
type SMTPRelay struct {
	Host string
	Port string
	User string
	Pass string

	templates map[string]*template.Template
	sendMail  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPRelay(host, port, user, pass, inboxTemplate, autoReplyTemplate string) *SMTPRelay {
	return &SMTPRelay{
		Host: host,
		Port: port,
		User: user,
		Pass: pass,
		templates: map[string]*template.Template{
			inboxTemplate:     inboxBody,
			autoReplyTemplate: autoReplyBody,
		},
		sendMail: smtp.SendMail,
	}
}

func (r *SMTPRelay) Send(ctx context.Context, templateID string, p Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.User == "" || r.Pass == "" {
		return errors.New("SMTP credentials not configured")
	}

	tmpl, ok := r.templates[templateID]
	if !ok {
		tmpl = inboxBody
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, p); err != nil {
		return errors.Wrapf(err, "failed to render template %s", templateID)
	}

	subject := "Portfolio Contact: " + p.Subject
	if tmpl == autoReplyBody {
		subject = "Re: " + p.Subject
	}

	msg := []byte("To: " + headerSafe(p.ToEmail) + "\r\n" +
		"Subject: " + headerSafe(subject) + "\r\n" +
		"From: " + r.User + "\r\n" +
		"Reply-To: " + headerSafe(p.ReplyTo) + "\r\n" +
		"\r\n" +
		body.String() + "\r\n")

	auth := smtp.PlainAuth("", r.User, r.Pass, r.Host)
	if err := r.sendMail(r.Host+":"+r.Port, auth, r.User, []string{p.ToEmail}, msg); err != nil {
		return &RelayError{Text: err.Error()}
	}
	return nil
}

// headerSafe strips line breaks so visitor input cannot inject extra headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
