package contact

import (
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/onetechcm/website/internal/content"
)

// htmlEscaper escapes the five HTML-special characters to their entity
// forms. Mirrors html.EscapeString except single quotes become the
// four-digit &#039; entity the notification templates use.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes user-supplied text for embedding in the HTML
// notification body. The rendered notification is interpreted as rich text
// downstream, so every user field must pass through here.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// emailData carries pre-escaped field values into the notification
// templates. MessageHTML additionally has newlines converted to <br> tags.
type emailData struct {
	Name        string
	Email       string
	Company     string
	Service     string
	Message     string
	MessageHTML string
	SubmittedAt string
}

func newEmailData(req Request, submittedAt time.Time) emailData {
	escapedMessage := EscapeHTML(req.Message)
	return emailData{
		Name:        EscapeHTML(req.Name),
		Email:       EscapeHTML(req.Email),
		Company:     EscapeHTML(req.Company),
		Service:     EscapeHTML(content.ServiceTitle(req.Service)),
		Message:     req.Message,
		MessageHTML: strings.ReplaceAll(escapedMessage, "\n", "<br>\n"),
		SubmittedAt: submittedAt.UTC().Format(time.RFC3339),
	}
}

// The notification bodies are built with text/template on purpose: the
// field values are escaped up front, and html/template would re-escape the
// entity forms and the <br> conversion.
var notificationHTML = texttemplate.Must(texttemplate.New("notification_html").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0f6ef2; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0f6ef2; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}} ({{.Email}})</div>
            </div>
{{- if .Company}}
            <div class="field">
                <div class="label">Company:</div>
                <div class="value">{{.Company}}</div>
            </div>
{{- end}}
{{- if .Service}}
            <div class="field">
                <div class="label">Service of Interest:</div>
                <div class="value">{{.Service}}</div>
            </div>
{{- end}}
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.MessageHTML}}</div>
            </div>
            <div class="field">
                <div class="label">Submitted At:</div>
                <div class="value">{{.SubmittedAt}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the One Tech contact form.</p>
            <p>Reply to this email to answer {{.Name}} directly.</p>
        </div>
    </div>
</body>
</html>`))

var notificationText = texttemplate.Must(texttemplate.New("notification_text").Parse(`New contact form submission

Name: {{.Name}}
Email: {{.Email}}
{{- if .Company}}
Company: {{.Company}}
{{- end}}
{{- if .Service}}
Service of Interest: {{.Service}}
{{- end}}
Submitted At: {{.SubmittedAt}}

Message:
{{.Message}}
`))

// renderNotification produces the HTML and plain-text representations of
// the notification for one request.
func renderNotification(req Request, submittedAt time.Time) (html, text string, err error) {
	data := newEmailData(req, submittedAt)

	var htmlBuf, textBuf strings.Builder
	if err := notificationHTML.Execute(&htmlBuf, data); err != nil {
		return "", "", err
	}

	// The plain-text body uses raw values; only the HTML representation is
	// an injection vector.
	textData := data
	textData.Name = req.Name
	textData.Email = req.Email
	textData.Company = req.Company
	textData.Service = content.ServiceTitle(req.Service)
	if err := notificationText.Execute(&textBuf, textData); err != nil {
		return "", "", err
	}

	return htmlBuf.String(), textBuf.String(), nil
}
