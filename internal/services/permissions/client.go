// Package permissions wraps the Amazon Verified Permissions API.
package permissions

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	avp "github.com/aws/aws-sdk-go-v2/service/verifiedpermissions"

	"github.com/nandemo-ya/awscmdlet/internal/awsclient"
)

const (
	// ServiceLabel names the service in diagnostics.
	ServiceLabel   = "Amazon Verified Permissions"
	endpointPrefix = "verifiedpermissions"
)

// API is the subset of the SDK client the operations use.
type API interface {
	ListPolicyStores(ctx context.Context, params *avp.ListPolicyStoresInput, optFns ...func(*avp.Options)) (*avp.ListPolicyStoresOutput, error)
	GetPolicyStore(ctx context.Context, params *avp.GetPolicyStoreInput, optFns ...func(*avp.Options)) (*avp.GetPolicyStoreOutput, error)
	CreatePolicyStore(ctx context.Context, params *avp.CreatePolicyStoreInput, optFns ...func(*avp.Options)) (*avp.CreatePolicyStoreOutput, error)
	ListPolicies(ctx context.Context, params *avp.ListPoliciesInput, optFns ...func(*avp.Options)) (*avp.ListPoliciesOutput, error)
	GetPolicy(ctx context.Context, params *avp.GetPolicyInput, optFns ...func(*avp.Options)) (*avp.GetPolicyOutput, error)
	CreatePolicy(ctx context.Context, params *avp.CreatePolicyInput, optFns ...func(*avp.Options)) (*avp.CreatePolicyOutput, error)
	DeletePolicy(ctx context.Context, params *avp.DeletePolicyInput, optFns ...func(*avp.Options)) (*avp.DeletePolicyOutput, error)
	IsAuthorized(ctx context.Context, params *avp.IsAuthorizedInput, optFns ...func(*avp.Options)) (*avp.IsAuthorizedOutput, error)
	BatchIsAuthorized(ctx context.Context, params *avp.BatchIsAuthorizedInput, optFns ...func(*avp.Options)) (*avp.BatchIsAuthorizedOutput, error)
}

var _ API = (*avp.Client)(nil)

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
	return NewClient(avp.NewFromConfig(cfg), awsclient.BuildEndpoint(cfg, endpointPrefix))
}

// Endpoint returns the endpoint requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}
