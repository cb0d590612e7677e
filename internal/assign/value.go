package assign

import "strings"

// Principal and target type discriminators used by AWS::SSO::Assignment.
const (
	PrincipalTypeGroup = "GROUP"
	PrincipalTypeUser  = "USER"

	TargetTypeAccount = "AWS_ACCOUNT"
)

// RefPrefix marks an input that should be rendered as a CloudFormation Ref
// instead of a literal identifier, e.g. "!Ref=PermissionSetParam".
const RefPrefix = "!Ref="

// Value is either a literal identifier or a symbolic reference to a template
// parameter or resource resolved by CloudFormation at deploy time. A
// reference is never equal to a literal, even when the names match.
type Value struct {
	Name string
	Ref  bool
}

// Parse interprets a raw input string. Surrounding whitespace is trimmed
// before matching the reference marker; anything not matching the marker is
// literal text, so Parse never fails. An empty name after the marker still
// produces a reference.
func Parse(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, RefPrefix) {
		return Value{Name: trimmed[len(RefPrefix):], Ref: true}
	}
	return Value{Name: trimmed}
}

// Literal wraps an already-resolved identifier.
func Literal(s string) Value { return Value{Name: s} }

// NewRef constructs a reference value directly.
func NewRef(name string) Value { return Value{Name: name, Ref: true} }

func (v Value) String() string {
	if v.Ref {
		return RefPrefix + v.Name
	}
	return v.Name
}
