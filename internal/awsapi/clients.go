// Package awsapi wraps the AWS APIs the tool depends on: SSO instance
// discovery, name-to-id lookups against the identity store, permission-set
// ARN lookups, and organizational-unit listings. All calls are synchronous
// and any failure is fatal to the run.
package awsapi

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/identitystore"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin"
)

// Clients bundles the AWS service clients for one run, built from a single
// shared config load.
type Clients struct {
	SSOAdmin      *ssoadmin.Client
	IdentityStore *identitystore.Client
	Organizations *organizations.Client
}

// New loads the default AWS config, optionally pinned to a named profile, and
// constructs the service clients.
func New(ctx context.Context, profile string) (*Clients, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Clients{
		SSOAdmin:      ssoadmin.NewFromConfig(cfg),
		IdentityStore: identitystore.NewFromConfig(cfg),
		Organizations: organizations.NewFromConfig(cfg),
	}, nil
}

// LookupError reports a failed lookup against an AWS API: nothing matched,
// the match was ambiguous, or an Organizations listing failed outright.
type LookupError struct {
	Msg string
	Err error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *LookupError) Unwrap() error { return e.Err }

func lookupErrorf(format string, args ...interface{}) *LookupError {
	return &LookupError{Msg: fmt.Sprintf(format, args...)}
}
