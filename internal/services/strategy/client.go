// Package strategy wraps the Migration Hub Strategy Recommendations API.
package strategy

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/migrationhubstrategy"

	"github.com/nandemo-ya/awscmdlet/internal/awsclient"
)

const (
	// ServiceLabel names the service in diagnostics.
	ServiceLabel   = "Migration Hub Strategy Recommendations"
	endpointPrefix = "migrationhub-strategy"
)

// API is the subset of the SDK client the operations use.
type API interface {
	ListServers(ctx context.Context, params *migrationhubstrategy.ListServersInput, optFns ...func(*migrationhubstrategy.Options)) (*migrationhubstrategy.ListServersOutput, error)
	GetServerDetails(ctx context.Context, params *migrationhubstrategy.GetServerDetailsInput, optFns ...func(*migrationhubstrategy.Options)) (*migrationhubstrategy.GetServerDetailsOutput, error)
	GetServerStrategies(ctx context.Context, params *migrationhubstrategy.GetServerStrategiesInput, optFns ...func(*migrationhubstrategy.Options)) (*migrationhubstrategy.GetServerStrategiesOutput, error)
	UpdateServerConfig(ctx context.Context, params *migrationhubstrategy.UpdateServerConfigInput, optFns ...func(*migrationhubstrategy.Options)) (*migrationhubstrategy.UpdateServerConfigOutput, error)
	ListApplicationComponents(ctx context.Context, params *migrationhubstrategy.ListApplicationComponentsInput, optFns ...func(*migrationhubstrategy.Options)) (*migrationhubstrategy.ListApplicationComponentsOutput, error)
	UpdateApplicationComponentConfig(ctx context.Context, params *migrationhubstrategy.UpdateApplicationComponentConfigInput, optFns ...func(*migrationhubstrategy.Options)) (*migrationhubstrategy.UpdateApplicationComponentConfigOutput, error)
}

var _ API = (*migrationhubstrategy.Client)(nil)

// Client produces operation descriptors bound to one service client.
type Client struct {
	api      API
	endpoint string
}

// NewClient wraps an already configured API implementation.
func NewClient(api API, endpoint string) *Client {
	return &Client{api: api, endpoint: endpoint}
}

// NewFromConfig creates the SDK client from cfg.
func NewFromConfig(cfg aws.Config) *Client {
	return NewClient(migrationhubstrategy.NewFromConfig(cfg), awsclient.BuildEndpoint(cfg, endpointPrefix))
}

// Endpoint returns the endpoint requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}
