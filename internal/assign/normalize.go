package assign

import "strings"

const (
	instanceARNPrefix      = "arn:aws:sso:::instance/"
	permissionSetARNPrefix = "arn:aws:sso:::permissionSet/"
)

// InstanceARN widens a bare SSO instance id to its full ARN. An input that is
// already an ARN is returned unchanged.
func InstanceARN(instance string) string {
	if strings.HasPrefix(instance, "arn") {
		return instance
	}
	return instanceARNPrefix + instance
}

// InstanceID extracts the trailing id segment from an instance ARN.
func InstanceID(instanceARN string) string {
	parts := strings.Split(instanceARN, "/")
	return parts[len(parts)-1]
}

// NormalizePermissionSet resolves a raw permission-set input into the ARN the
// assignment resource needs. Three literal shapes are accepted: a full ARN
// (passed through), a "ssoins-.../ps-..." suffix carrying its own instance id
// (which overrides instanceID), and a bare permission-set id qualified with
// instanceID. A reference passes through untouched and is never combined with
// the instance id: its final value is unknown until deploy time.
func NormalizePermissionSet(raw Value, instanceID string) (Value, error) {
	if raw.Ref {
		return raw, nil
	}
	switch s := raw.Name; {
	case strings.HasPrefix(s, "arn"):
		return raw, nil
	case strings.HasPrefix(s, "ssoins") || strings.HasPrefix(s, "ins"):
		return Literal(permissionSetARNPrefix + s), nil
	default:
		if instanceID == "" {
			return Value{}, NewConfigError("cannot build an ARN for permission set %q: no instance id available, pass one explicitly or ensure it is discoverable", s)
		}
		return Literal(permissionSetARNPrefix + instanceID + "/" + s), nil
	}
}
