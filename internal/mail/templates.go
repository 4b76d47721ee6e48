package mail

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/studydesk/dashboard/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	TestSubject = "Test Email from User Dashboard"
	TestText    = "This is a test email from your User Dashboard application."
)

var (
	//go:embed templates/catalog.yaml
	catalogRaw []byte
	//go:embed templates/test_email.html
	testEmailRaw string

	catalog       []model.EmailTemplate
	testEmailTmpl = template.New("test_email").Funcs(sprig.FuncMap())
)

func init() {
	if err := yaml.Unmarshal(catalogRaw, &catalog); err != nil {
		panic(fmt.Sprintf("mail: parse template catalog: %v", err))
	}
	if _, err := testEmailTmpl.Parse(testEmailRaw); err != nil {
		panic(err)
	}
}

// Templates returns a copy of the predefined email templates.
func Templates() []model.EmailTemplate {
	out := make([]model.EmailTemplate, len(catalog))
	copy(out, catalog)
	return out
}

// TestEmailParams feeds the configuration test email.
type TestEmailParams struct {
	AppName string
	SentAt  time.Time
}

// RenderTestEmail renders the HTML body of the configuration test email.
func RenderTestEmail(p TestEmailParams) (string, error) {
	var b bytes.Buffer
	err := testEmailTmpl.Execute(&b, p)
	return b.String(), err
}

// TestMessage builds the configuration test email addressed to to.
func TestMessage(to string, sentAt time.Time) (Message, error) {
	html, err := RenderTestEmail(TestEmailParams{AppName: "User Dashboard", SentAt: sentAt})
	if err != nil {
		return Message{}, err
	}
	return Message{To: []string{to}, Subject: TestSubject, HTML: html, Text: TestText}, nil
}
