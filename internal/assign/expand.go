package assign

// Principal is a group or user receiving an assignment.
type Principal struct {
	Type string // PrincipalTypeGroup or PrincipalTypeUser
	ID   Value
}

// Target is the account an assignment applies to. OU inputs never reach this
// type: they are expanded to accounts first.
type Target struct {
	Type string // TargetTypeAccount
	ID   Value
}

// Assignment is one (principal, permission set, target) combination and maps
// to exactly one AWS::SSO::Assignment resource.
type Assignment struct {
	Principal     Principal
	PermissionSet Value
	Target        Target
}

// Expand computes the full cross product of the three axes. Each axis is
// deduplicated first (structural equality, first occurrence wins) and then
// iterated in slice order, so identical inputs always produce the identical
// record sequence: principal-major, then permission set, then target. An
// empty axis yields an empty result, not an error. Expand never caps the
// output; bounding it is the partitioner's job.
func Expand(principals []Principal, permissionSets []Value, targets []Target) []Assignment {
	principals = dedup(principals)
	permissionSets = dedup(permissionSets)
	targets = dedup(targets)

	records := make([]Assignment, 0, len(principals)*len(permissionSets)*len(targets))
	for _, p := range principals {
		for _, ps := range permissionSets {
			for _, t := range targets {
				records = append(records, Assignment{Principal: p, PermissionSet: ps, Target: t})
			}
		}
	}
	return records
}

func dedup[T comparable](in []T) []T {
	seen := make(map[T]bool, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
