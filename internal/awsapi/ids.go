package awsapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin"

	"github.com/benkehoe/aws-sso-cfn-helper/internal/assign"
)

// SSOInstanceAPI is the slice of the sso-admin client needed for instance
// discovery.
type SSOInstanceAPI interface {
	ListInstances(ctx context.Context, params *ssoadmin.ListInstancesInput, optFns ...func(*ssoadmin.Options)) (*ssoadmin.ListInstancesOutput, error)
}

// IDs resolves the SSO instance ARN / identity store id pair for a run.
// Either value may be supplied up front; whatever is missing is discovered
// from ListInstances, which must return exactly one instance. Discovered
// values are cached for the rest of the run and cross-checked against
// supplied ones.
type IDs struct {
	client          SSOInstanceAPI
	instanceARN     string
	identityStoreID string
}

// NewIDs seeds the resolver with any values the user already supplied. A
// bare instance id is widened to its ARN form.
func NewIDs(client SSOInstanceAPI, instance, identityStoreID string) *IDs {
	instanceARN := ""
	if instance != "" {
		instanceARN = assign.InstanceARN(instance)
	}
	return &IDs{
		client:          client,
		instanceARN:     instanceARN,
		identityStoreID: identityStoreID,
	}
}

// InstanceARN returns the instance ARN, discovering it if needed.
func (i *IDs) InstanceARN(ctx context.Context) (string, error) {
	if i.instanceARN == "" {
		if err := i.discover(ctx); err != nil {
			return "", err
		}
	}
	return i.instanceARN, nil
}

// IdentityStoreID returns the identity store id, discovering it if needed.
func (i *IDs) IdentityStoreID(ctx context.Context) (string, error) {
	if i.identityStoreID == "" {
		if err := i.discover(ctx); err != nil {
			return "", err
		}
	}
	return i.identityStoreID, nil
}

func (i *IDs) discover(ctx context.Context) error {
	response, err := i.client.ListInstances(ctx, &ssoadmin.ListInstancesInput{})
	if err != nil {
		return lookupErrorf("listing SSO instances: %v", err)
	}

	switch len(response.Instances) {
	case 0:
		return lookupErrorf("no SSO instance found, please specify one with --instance")
	case 1:
	default:
		return lookupErrorf("%d SSO instances found, please specify one with --instance", len(response.Instances))
	}

	instanceARN := aws.ToString(response.Instances[0].InstanceArn)
	identityStoreID := aws.ToString(response.Instances[0].IdentityStoreId)

	if i.instanceARN != "" && i.instanceARN != instanceARN {
		return lookupErrorf("SSO instance %s does not match given instance %s",
			assign.InstanceID(instanceARN), assign.InstanceID(i.instanceARN))
	}
	if i.identityStoreID != "" && i.identityStoreID != identityStoreID {
		return lookupErrorf("SSO identity store %s does not match given identity store %s",
			identityStoreID, i.identityStoreID)
	}

	i.instanceARN = instanceARN
	i.identityStoreID = identityStoreID
	return nil
}
