package overseer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type DeprovisionOrgV1Input struct {
	OrganizationId string `json:"organizationId"`
}

type DeprovisionOrgV1Output struct {
	Message string `json:"message"`
}

// DeprovisionError is the controller's failure envelope for the
// deprovisioning endpoint; the Kind is the only way callers can
// distinguish failure classes since every failure is an HTTP 400.
type DeprovisionError struct {
	Kind    string `json:"error"`
	Details string `json:"details"`
}

func (e *DeprovisionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Details)
}

// DeprovisionOrgV1 irreversibly removes an organisation and all of its
// linked accounts. This endpoint does not use the standard response
// envelope, so it is requested directly instead of through do().
func (c Client) DeprovisionOrgV1(input DeprovisionOrgV1Input) (*DeprovisionOrgV1Output, error) {
	controllerUrl := *c.ControllerUrl
	controllerUrl.Path = "/api/v1/org/deprovision"
	requestBodyData, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data: %s", err)
	}
	httpRequest, err := http.NewRequest(http.MethodPost, controllerUrl.String(), bytes.NewBuffer(requestBodyData))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %s", err)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("overseer/sdk/client-%s", c.Id))
	if c.BearerAuth != nil {
		httpRequest.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.BearerAuth.Token))
	}
	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to execute http request: %s", err)
	}
	defer httpResponse.Body.Close()
	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s", err)
	}
	if httpResponse.StatusCode != http.StatusOK {
		var deprovisionError DeprovisionError
		if err := json.Unmarshal(responseBody, &deprovisionError); err != nil || deprovisionError.Kind == "" {
			return nil, fmt.Errorf("failed to receive a successful response (status code: %v): %s", httpResponse.StatusCode, string(responseBody))
		}
		return nil, &deprovisionError
	}
	var output DeprovisionOrgV1Output
	if err := json.Unmarshal(responseBody, &output); err != nil {
		return nil, fmt.Errorf("failed to parse response from controller service: %s", err)
	}
	return &output, nil
}
