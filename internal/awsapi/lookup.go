package awsapi

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/identitystore"
	idstoretypes "github.com/aws/aws-sdk-go-v2/service/identitystore/types"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin"
)

// NotFound is substituted for names that fail to resolve when the caller
// chooses not to abort. Downstream treats it as an ordinary, if broken,
// identifier.
const NotFound = "NOT_FOUND"

// IdentityStoreAPI is the slice of the identity store client used for
// name-to-id lookups.
type IdentityStoreAPI interface {
	ListGroups(ctx context.Context, params *identitystore.ListGroupsInput, optFns ...func(*identitystore.Options)) (*identitystore.ListGroupsOutput, error)
	ListUsers(ctx context.Context, params *identitystore.ListUsersInput, optFns ...func(*identitystore.Options)) (*identitystore.ListUsersOutput, error)
}

// LookupGroupID resolves a group display name to its group id. Zero or
// multiple matches are a LookupError; transport failures are returned as-is.
func LookupGroupID(ctx context.Context, client IdentityStoreAPI, identityStoreID, name string) (string, error) {
	response, err := client.ListGroups(ctx, &identitystore.ListGroupsInput{
		IdentityStoreId: aws.String(identityStoreID),
		Filters: []idstoretypes.Filter{
			{AttributePath: aws.String("DisplayName"), AttributeValue: aws.String(name)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("listing groups: %w", err)
	}

	switch len(response.Groups) {
	case 0:
		return "", lookupErrorf("no group named %s found", name)
	case 1:
		return aws.ToString(response.Groups[0].GroupId), nil
	default:
		return "", lookupErrorf("%d groups named %s found", len(response.Groups), name)
	}
}

// LookupUserID resolves a user name to its user id, with the same failure
// semantics as LookupGroupID.
func LookupUserID(ctx context.Context, client IdentityStoreAPI, identityStoreID, name string) (string, error) {
	response, err := client.ListUsers(ctx, &identitystore.ListUsersInput{
		IdentityStoreId: aws.String(identityStoreID),
		Filters: []idstoretypes.Filter{
			{AttributePath: aws.String("UserName"), AttributeValue: aws.String(name)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("listing users: %w", err)
	}

	switch len(response.Users) {
	case 0:
		return "", lookupErrorf("no user named %s found", name)
	case 1:
		return aws.ToString(response.Users[0].UserId), nil
	default:
		return "", lookupErrorf("%d users named %s found", len(response.Users), name)
	}
}

// SSOAdminAPI is the slice of the sso-admin client used for permission-set
// lookups. It satisfies ssoadmin.ListPermissionSetsAPIClient.
type SSOAdminAPI interface {
	ListPermissionSets(ctx context.Context, params *ssoadmin.ListPermissionSetsInput, optFns ...func(*ssoadmin.Options)) (*ssoadmin.ListPermissionSetsOutput, error)
	DescribePermissionSet(ctx context.Context, params *ssoadmin.DescribePermissionSetInput, optFns ...func(*ssoadmin.Options)) (*ssoadmin.DescribePermissionSetOutput, error)
}

// PermissionSetLookup resolves permission-set names to ARNs. The API only
// lists ARNs, so each page is described name-by-name; every name seen is
// cached so later lookups in the same run stop paginating early or skip the
// API entirely. The cache does not outlive the run.
type PermissionSetLookup struct {
	client      SSOAdminAPI
	instanceARN string
	cache       map[string]string
}

func NewPermissionSetLookup(client SSOAdminAPI, instanceARN string) *PermissionSetLookup {
	return &PermissionSetLookup{
		client:      client,
		instanceARN: instanceARN,
		cache:       make(map[string]string),
	}
}

// ARN returns the permission-set ARN for name.
func (l *PermissionSetLookup) ARN(ctx context.Context, name string) (string, error) {
	if arn, ok := l.cache[name]; ok {
		return arn, nil
	}

	paginator := ssoadmin.NewListPermissionSetsPaginator(l.client, &ssoadmin.ListPermissionSetsInput{
		InstanceArn: aws.String(l.instanceARN),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("listing permission sets: %w", err)
		}
		for _, arn := range page.PermissionSets {
			description, err := l.client.DescribePermissionSet(ctx, &ssoadmin.DescribePermissionSetInput{
				InstanceArn:      aws.String(l.instanceARN),
				PermissionSetArn: aws.String(arn),
			})
			if err != nil {
				return "", fmt.Errorf("describing permission set %s: %w", arn, err)
			}
			l.cache[aws.ToString(description.PermissionSet.Name)] = arn
		}
		if arn, ok := l.cache[name]; ok {
			return arn, nil
		}
	}

	return "", lookupErrorf("no permission set named %s found", name)
}
