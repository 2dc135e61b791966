package email

import "fmt"

// SendCommunityWelcomeEmail greets a member who just joined a community.
func (c *Client) SendCommunityWelcomeEmail(to, firstName, communityName string) error {
	if firstName == "" {
		firstName = "there"
	}

	data := map[string]string{
		"UserFirstName": firstName,
		"CommunityName": communityName,
	}

	return c.SendEmail(
		to,
		fmt.Sprintf("Welcome to %s on Threads", communityName),
		TemplateCommunityWelcome,
		data,
	)
}
