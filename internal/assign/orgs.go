package assign

import (
	"context"
	"fmt"
)

// OrgLister enumerates the direct children of an organizational unit. Both
// calls are synchronous and issued once per unit visited; there is no
// memoization across calls or runs.
type OrgLister interface {
	ListChildOUs(ctx context.Context, ouID string) ([]string, error)
	ListAccounts(ctx context.Context, ouID string) ([]string, error)
}

// ExpandOU returns the accounts contained in ouID and every descendant unit.
// Traversal is breadth-first over an explicit queue, so account order is a
// stable function of the API's listing order rather than of call-stack depth.
// Accounts are deduplicated, first occurrence wins. An empty OU yields an
// empty slice, not an error. Any listing failure aborts the whole expansion:
// a partial account list would silently under-report assignments.
func ExpandOU(ctx context.Context, client OrgLister, ouID Value) ([]Value, error) {
	if ouID.Ref {
		return nil, NewConfigError("OU %q is a reference and cannot be expanded against the Organizations API", ouID.Name)
	}

	var accounts []Value
	seen := make(map[string]bool)

	queue := []string{ouID.Name}
	for len(queue) > 0 {
		unit := queue[0]
		queue = queue[1:]

		children, err := client.ListChildOUs(ctx, unit)
		if err != nil {
			return nil, fmt.Errorf("listing child OUs of %s: %w", unit, err)
		}
		queue = append(queue, children...)

		ids, err := client.ListAccounts(ctx, unit)
		if err != nil {
			return nil, fmt.Errorf("listing accounts of %s: %w", unit, err)
		}
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				accounts = append(accounts, Literal(id))
			}
		}
	}

	return accounts, nil
}
