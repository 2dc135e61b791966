package email

import "fmt"

// PreviewData is sample template data used by `threads email-preview`.
var PreviewData = map[Template]map[string]string{
	TemplateCommunityWelcome: {
		"UserFirstName": "Jane",
		"CommunityName": "Acme",
	},
}

// Preview renders name with its sample data.
func Preview(name Template) (string, error) {
	data, ok := PreviewData[name]
	if !ok {
		return "", fmt.Errorf("no preview data for email template %q", name)
	}
	return Render(name, data)
}
