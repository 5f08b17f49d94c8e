package overseer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

var (
	ErrorLoginFailed      = fmt.Errorf("login failed")
	ErrorAuthRequired     = fmt.Errorf("auth required")
	ErrorMfaTokenRequired = fmt.Errorf("mfa token required")
)

type NewClientOpts struct {
	// ControllerUrl is the URL where the controller service is
	// accessible at
	ControllerUrl string

	// BearerAuth carries the operator's session token when set
	BearerAuth *NewClientBearerAuthOpts

	// Id will be included in the user-agent for identification
	Id string
}

type NewClientBearerAuthOpts struct {
	Token string
}

func NewClient(opts NewClientOpts) (*Client, error) {
	client := &Client{
		BearerAuth: opts.BearerAuth,
		HttpClient: &http.Client{},
		Id:         opts.Id,
	}

	controllerUrl, err := url.Parse(opts.ControllerUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided controllerUrl[%s]: %s", opts.ControllerUrl, err)
	}
	if controllerUrl.Scheme == "" {
		return nil, fmt.Errorf("failed to determine url scheme of controllerUrl[%s]", opts.ControllerUrl)
	}
	client.ControllerUrl = controllerUrl

	return client, nil
}

type Client struct {
	ControllerUrl *url.URL
	BearerAuth    *NewClientBearerAuthOpts
	HttpClient    *http.Client
	Id            string
}

// httpResponse mirrors the controller's standard response envelope.
type httpResponse struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Success bool            `json:"success"`
}

type doRequestInput struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// Output receives the envelope's data field when non-nil
	Output any
}

func (c Client) do(input doRequestInput) (*httpResponse, error) {
	controllerUrl := *c.ControllerUrl
	controllerUrl.Path = input.Path
	if input.Query != nil {
		controllerUrl.RawQuery = input.Query.Encode()
	}
	var requestBody io.Reader
	if input.Body != nil {
		requestBodyData, err := json.Marshal(input.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal data: %s", err)
		}
		requestBody = bytes.NewBuffer(requestBodyData)
	}
	httpRequest, err := http.NewRequest(input.Method, controllerUrl.String(), requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %s", err)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("overseer/sdk/client-%s", c.Id))
	if c.BearerAuth != nil {
		httpRequest.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.BearerAuth.Token))
	}
	httpResponseRaw, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to execute http request: %s", err)
	}
	defer httpResponseRaw.Body.Close()
	responseBody, err := io.ReadAll(httpResponseRaw.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s", err)
	}
	if httpResponseRaw.StatusCode == http.StatusUnauthorized || httpResponseRaw.StatusCode == http.StatusForbidden {
		var failure httpResponse
		if err := json.Unmarshal(responseBody, &failure); err == nil {
			var details string
			if json.Unmarshal(failure.Data, &details) == nil && details == "mfa_token_required" {
				return nil, fmt.Errorf("failed to authenticate: %w", ErrorMfaTokenRequired)
			}
		}
		return nil, fmt.Errorf("failed to authenticate (status code: %v): %w", httpResponseRaw.StatusCode, ErrorAuthRequired)
	}
	if httpResponseRaw.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to receive a successful response (status code: %v): %s", httpResponseRaw.StatusCode, string(responseBody))
	}
	var response httpResponse
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response from controller service: %s", err)
	}
	if input.Output != nil {
		if err := json.Unmarshal(response.Data, input.Output); err != nil {
			return nil, fmt.Errorf("failed to parse response data from controller service: %s", err)
		}
	}
	return &response, nil
}
