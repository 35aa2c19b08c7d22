// Package awsclient builds the aws-sdk-go-v2 configuration shared by every
// service client. Credentials, signing and retries are handled by the SDK.
package awsclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// DefaultRegion is used when neither the configuration nor the environment names a region.
const DefaultRegion = "us-east-1"

// Credentials holds static AWS credentials
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Config holds configuration for AWS clients
type Config struct {
	// Credentials for AWS authentication (optional, falls back to the default chain)
	Credentials Credentials

	// Region is the AWS region
	Region string

	// Profile is the shared config profile (optional)
	Profile string

	// Endpoint is the API endpoint (optional, for custom endpoints like LocalStack)
	Endpoint string

	// InsecureSkipVerify skips TLS certificate verification
	InsecureSkipVerify bool

	// Timeout for requests
	Timeout time.Duration

	// MaxAttempts is the maximum number of attempts the SDK retryer makes
	MaxAttempts int

	// AppID is added to the user agent of every request (optional)
	AppID string
}

// LoadAWSConfig resolves an aws.Config from cfg and the default credential chain.
func LoadAWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	if cfg.AppID != "" {
		opts = append(opts, config.WithAppID(cfg.AppID))
	}

	if cfg.Credentials.AccessKeyID != "" && cfg.Credentials.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Credentials.AccessKeyID,
			cfg.Credentials.SecretAccessKey,
			cfg.Credentials.SessionToken,
		)))
	}

	if cfg.MaxAttempts > 0 {
		maxAttempts := cfg.MaxAttempts
		opts = append(opts, config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), maxAttempts)
		}))
	}

	httpClient := awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		if cfg.InsecureSkipVerify {
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
	})
	if cfg.Timeout > 0 {
		httpClient = httpClient.WithTimeout(cfg.Timeout)
	}
	opts = append(opts, config.WithHTTPClient(httpClient))

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.Endpoint != "" {
		awsCfg.BaseEndpoint = aws.String(NormalizeEndpoint(cfg.Endpoint))
	}

	return awsCfg, nil
}

// NormalizeEndpoint adds a scheme to a bare host and strips the trailing slash.
func NormalizeEndpoint(endpoint string) string {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	return strings.TrimSuffix(endpoint, "/")
}

// BuildEndpoint returns the endpoint a service client sends requests to, the
// custom endpoint when one is configured or the regional default otherwise.
func BuildEndpoint(cfg aws.Config, endpointPrefix string) string {
	if cfg.BaseEndpoint != nil && *cfg.BaseEndpoint != "" {
		return *cfg.BaseEndpoint
	}

	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	suffix := "amazonaws.com"
	if strings.HasPrefix(region, "cn-") {
		suffix = "amazonaws.com.cn"
	}
	return fmt.Sprintf("https://%s.%s.%s", endpointPrefix, region, suffix)
}
