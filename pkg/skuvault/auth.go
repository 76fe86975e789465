package skuvault

import (
	"context"

	httpclient "github.com/natserract/skuvault/pkg/http"
)

// GetTokens exchanges an account email and password for a vendor-issued
// tenant/user token pair. This is the one endpoint that takes no auth
// fields. The returned tokens are not applied to the client's stored
// credentials; call SetCredentials explicitly once the caller has read them
// out of the response body.
func (c *Client) GetTokens(ctx context.Context, email, password string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("Email", email).
		Set("Password", password)
	return c.postUnauthenticated(ctx, "gettokens", fields)
}
