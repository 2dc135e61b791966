package commands

import (
	"fmt"
	"os"

	"github.com/deppfellow/threads-backend/internal/lib/email"
)

type EmailPreviewCmd struct {
	Template string `arg:"" help:"template name, e.g. community_welcome"`
	Output   string `short:"o" help:"write the HTML to this file instead of stdout" type:"path"`
}

func (c *EmailPreviewCmd) Run(globals *Globals) error {
	html, err := email.Preview(email.Template(c.Template))
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = fmt.Fprintln(os.Stdout, html)
		return err
	}

	return os.WriteFile(c.Output, []byte(html), 0o644)
}
