package awsapi

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
)

// OrganizationsAPI is the slice of the Organizations client used for OU
// expansion. It satisfies the SDK's paginator client interfaces.
type OrganizationsAPI interface {
	ListOrganizationalUnitsForParent(ctx context.Context, params *organizations.ListOrganizationalUnitsForParentInput, optFns ...func(*organizations.Options)) (*organizations.ListOrganizationalUnitsForParentOutput, error)
	ListAccountsForParent(ctx context.Context, params *organizations.ListAccountsForParentInput, optFns ...func(*organizations.Options)) (*organizations.ListAccountsForParentOutput, error)
}

// OrgLister adapts the Organizations client to the expander's interface,
// flattening each paginated listing into a plain id slice.
type OrgLister struct {
	client OrganizationsAPI
}

func NewOrgLister(client OrganizationsAPI) *OrgLister {
	return &OrgLister{client: client}
}

func (l *OrgLister) ListChildOUs(ctx context.Context, ouID string) ([]string, error) {
	paginator := organizations.NewListOrganizationalUnitsForParentPaginator(l.client, &organizations.ListOrganizationalUnitsForParentInput{
		ParentId: aws.String(ouID),
	})

	var ids []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &LookupError{Msg: fmt.Sprintf("listing organizational units under %s", ouID), Err: err}
		}
		for _, unit := range page.OrganizationalUnits {
			ids = append(ids, aws.ToString(unit.Id))
		}
	}
	return ids, nil
}

func (l *OrgLister) ListAccounts(ctx context.Context, ouID string) ([]string, error) {
	paginator := organizations.NewListAccountsForParentPaginator(l.client, &organizations.ListAccountsForParentInput{
		ParentId: aws.String(ouID),
	})

	var ids []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &LookupError{Msg: fmt.Sprintf("listing accounts under %s", ouID), Err: err}
		}
		for _, account := range page.Accounts {
			ids = append(ids, aws.ToString(account.Id))
		}
	}
	return ids, nil
}
