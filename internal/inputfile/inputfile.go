// Package inputfile reads the INI-format input file that replaces the list
// flags of the generate command. Each section holds one entry per line; lines
// are bare keys except for "!Ref = Name", which turns into the usual
// !Ref=Name token.
package inputfile

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/benkehoe/aws-sso-cfn-helper/internal/assign"
)

// Input carries the raw values read from an input file. Values are strings at
// this point; parsing them into literals or references happens in the
// expansion pipeline.
type Input struct {
	Instance       string
	Groups         []string
	Users          []string
	PermissionSets []string
	OUs            []string
	Accounts       []string
}

// Load parses an input file with sections [instance], [groups], [users],
// [permission-sets], [ous] and [accounts]. Missing sections are empty lists;
// more than one entry under [instance] is a configuration error.
func Load(path string) (*Input, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		// Entries are bare keys, and ids may contain ":" (ARNs), so only
		// "=" may act as a delimiter.
		AllowBooleanKeys:   true,
		AllowShadows:       true,
		KeyValueDelimiters: "=",
	}, path)
	if err != nil {
		return nil, fmt.Errorf("reading input file %s: %w", path, err)
	}

	instances := sectionValues(file, "instance")
	if len(instances) > 1 {
		return nil, assign.NewConfigError("multiple instances specified in input file %s", path)
	}

	in := &Input{
		Groups:         sectionValues(file, "groups"),
		Users:          sectionValues(file, "users"),
		PermissionSets: sectionValues(file, "permission-sets"),
		OUs:            sectionValues(file, "ous"),
		Accounts:       sectionValues(file, "accounts"),
	}
	if len(instances) == 1 {
		in.Instance = instances[0]
	}
	return in, nil
}

func sectionValues(file *ini.File, name string) []string {
	section, err := file.GetSection(name)
	if err != nil {
		return nil
	}

	var values []string
	for _, key := range section.Keys() {
		if strings.EqualFold(key.Name(), "!Ref") {
			for _, v := range key.ValueWithShadows() {
				values = append(values, assign.RefPrefix+v)
			}
			continue
		}
		values = append(values, key.Name())
	}
	return values
}
