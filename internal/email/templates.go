package email

import (
	"bytes"
	"html/template"
)

// providerMessageTemplate is the mail a freelancer sends to a job provider
// from the job page.
var providerMessageTemplate = template.Must(template.New("provider_message").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #20242C; background-color: #F4F6F8;">
    <div style="max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px; background-color: white;">
      <h2 style="color: #3575E2;">Message from {{.UserName}}</h2>
      <p>{{.Message}}</p>
    </div>
    <div style="text-align: center; margin-top: 20px; font-size: 0.85em; color: #6c757d;">
      <p>SkillConnect | Connecting skills to opportunities</p>
    </div>
  </body>
</html>`))

type ProviderMessageData struct {
	UserName string
	Message  string
}

// RenderProviderMessage produces the HTML body for a contact-provider mail.
func RenderProviderMessage(data ProviderMessageData) (string, error) {
	var buf bytes.Buffer
	if err := providerMessageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
