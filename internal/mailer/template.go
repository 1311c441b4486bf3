package mailer

import (
	"html/template"
	"strings"
)

// workHoursBody mirrors the report email sent with the monthly spreadsheet.
// A non-empty custom summary replaces the default paragraphs verbatim.
var workHoursBody = template.Must(template.New("work-hours").Parse(`<!DOCTYPE html>
<html>
<body>
    <p>Dear Sir / ma'am,</p>
    <p>I hope this email finds you well.</p>
{{- if .Summary }}
    <p>{{ .Summary }}</p>
{{- else }}
    <p>Please find attached my work hours for the month of {{ .Month }}. The attached document includes a detailed breakdown of the hours worked each day, along with the tasks and projects I have been involved in during this period.</p>
    <p>If you have any questions or need further clarification, please do not hesitate to reach out.</p>
{{- end }}
    <p>Thank you for your attention to this matter.</p>
    <p>Best regards,</p>
    <p>{{ .Name }}</p>
</body>
</html>
`))

// RenderWorkHoursBody renders the report email body for the given month and
// sender name. summary, when non-empty, is used as the body text instead of
// the default paragraph.
func RenderWorkHoursBody(month, name string, summary *string) (string, error) {
	data := struct {
		Month   string
		Name    string
		Summary string
	}{Month: month, Name: name}
	if summary != nil {
		data.Summary = *summary
	}

	var b strings.Builder
	if err := workHoursBody.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
