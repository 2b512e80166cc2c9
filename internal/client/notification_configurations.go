package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// NotificationConfigurationsClient implements
// tfe.NotificationConfigurationsClient.
type NotificationConfigurationsClient struct {
	httpClient *http.Client
}

// NewNotificationConfigurationsClient creates a new notification
// configurations client.
func NewNotificationConfigurationsClient(httpClient *http.Client) *NotificationConfigurationsClient {
	return &NotificationConfigurationsClient{httpClient: httpClient}
}

func flattenNotificationConfiguration(res *tfe.ResourceObject[tfe.NotificationConfiguration]) tfe.NotificationConfiguration {
	config := res.Attributes
	config.ID = res.ID
	config.WorkspaceID = res.RelatedID("subscribable")

	return config
}

// List implements tfe.NotificationConfigurationsClient.List.
func (c *NotificationConfigurationsClient) List(ctx context.Context, workspaceID string, opts *tfe.ListOptions) (*tfe.Page[tfe.NotificationConfiguration], error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/notification-configurations"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing notification configurations: %w", err)
	}

	doc, err := decodeList[tfe.NotificationConfiguration](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing notification configurations list: %w", err)
	}

	return buildPage(doc, flattenNotificationConfiguration), nil
}

// Read implements tfe.NotificationConfigurationsClient.Read.
func (c *NotificationConfigurationsClient) Read(ctx context.Context, notificationConfigurationID string) (*tfe.NotificationConfiguration, error) {
	path := "/notification-configurations/" + url.PathEscape(notificationConfigurationID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("reading notification configuration: %w", err)
	}

	res, err := decodeResource[tfe.NotificationConfiguration](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing notification configuration: %w", err)
	}

	config := flattenNotificationConfiguration(res)

	return &config, nil
}

// Create implements tfe.NotificationConfigurationsClient.Create.
func (c *NotificationConfigurationsClient) Create(ctx context.Context, workspaceID string, opts *tfe.NotificationConfigurationCreateOptions) (*tfe.NotificationConfiguration, error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.NotificationConfigurationCreateOptions]]{
		Data: tfe.ResourceObject[*tfe.NotificationConfigurationCreateOptions]{
			Type:       "notification-configurations",
			Attributes: opts,
		},
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/notification-configurations"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating notification configuration: %w", err)
	}

	res, err := decodeResource[tfe.NotificationConfiguration](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing notification configuration: %w", err)
	}

	config := flattenNotificationConfiguration(res)

	return &config, nil
}

// Update implements tfe.NotificationConfigurationsClient.Update.
func (c *NotificationConfigurationsClient) Update(ctx context.Context, notificationConfigurationID string, opts *tfe.NotificationConfigurationUpdateOptions) (*tfe.NotificationConfiguration, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.NotificationConfigurationUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.NotificationConfigurationUpdateOptions]{
			Type:       "notification-configurations",
			Attributes: opts,
		},
	}

	path := "/notification-configurations/" + url.PathEscape(notificationConfigurationID)

	resp, err := c.httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating notification configuration: %w", err)
	}

	res, err := decodeResource[tfe.NotificationConfiguration](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing notification configuration: %w", err)
	}

	config := flattenNotificationConfiguration(res)

	return &config, nil
}

// Delete implements tfe.NotificationConfigurationsClient.Delete.
func (c *NotificationConfigurationsClient) Delete(ctx context.Context, notificationConfigurationID string) error {
	path := "/notification-configurations/" + url.PathEscape(notificationConfigurationID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting notification configuration: %w", err)
	}

	return nil
}

// Verify implements tfe.NotificationConfigurationsClient.Verify. It asks the
// server to deliver a verification payload to the destination and returns the
// configuration with the delivery response recorded.
func (c *NotificationConfigurationsClient) Verify(ctx context.Context, notificationConfigurationID string) (*tfe.NotificationConfiguration, error) {
	path := "/notification-configurations/" + url.PathEscape(notificationConfigurationID) + "/actions/verify"

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("verifying notification configuration: %w", err)
	}

	res, err := decodeResource[tfe.NotificationConfiguration](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing notification configuration: %w", err)
	}

	config := flattenNotificationConfiguration(res)

	return &config, nil
}
