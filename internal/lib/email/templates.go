package email

import "sort"

// Template names an HTML file under templates/, without the extension.
type Template string

const (
	TemplateCommunityWelcome Template = "community_welcome"
)

func (t Template) file() string {
	return string(t) + ".html"
}

// Templates lists the templates with preview data, sorted by name.
func Templates() []Template {
	names := make([]Template, 0, len(PreviewData))
	for name := range PreviewData {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
