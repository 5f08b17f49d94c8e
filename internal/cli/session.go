package cli

import (
	"errors"
	"fmt"

	"overseer/pkg/overseer"
)

// RequireAuth returns a controller client carrying a validated session
// token. When the stored session is missing or no longer valid, the
// stale token file is removed and the user is told to login again.
func RequireAuth(controllerUrl string, methodId string) (*overseer.Client, error) {
	sessionToken, _, err := overseer.GetSessionToken()
	if err != nil {
		fmt.Println("You must be logged-in to run this command")
		return nil, ErrorNotAuthenticated
	}

	client, err := overseer.NewClient(overseer.NewClientOpts{
		ControllerUrl: controllerUrl,
		BearerAuth: &overseer.NewClientBearerAuthOpts{
			Token: sessionToken,
		},
		Id: methodId,
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	if _, err := client.GetSessionV1(); err != nil {
		if errors.Is(err, overseer.ErrorAuthRequired) {
			if err := overseer.DeleteSessionToken(); err != nil {
				fmt.Println("We failed to remove the session token for you, please do it yourself")
			}
			fmt.Println("Please login again using `overseer login`")
			return nil, ErrorNotAuthenticated
		}
		return nil, fmt.Errorf("%w: %s", ErrorControllerUnavailable, err)
	}

	return client, nil
}
