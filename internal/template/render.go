package template

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/benkehoe/aws-sso-cfn-helper/internal/assign"
)

// Render produces the CloudFormation template body for one document. Logical
// resource ids are AssignmentNNN, numbered globally across documents starting
// at startIndex and zero-padded to fit total. Resource and property order are
// part of the output contract, so the tree is built from yaml.Node mappings
// rather than Go maps.
func Render(doc Document, instanceARN string, startIndex, total int) ([]byte, error) {
	width := len(fmt.Sprintf("%d", total))
	if width < 3 {
		width = 3
	}

	resources := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, record := range doc {
		name := fmt.Sprintf("Assignment%0*d", width, startIndex+i)
		resources.Content = append(resources.Content, strNode(name), resourceNode(record, instanceARN))
	}

	root := mapNode(
		"AWSTemplateFormatVersion", strNode("2010-09-09"),
		"Resources", resources,
	)

	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("marshaling template: %w", err)
	}
	return out, nil
}

func resourceNode(record assign.Assignment, instanceARN string) *yaml.Node {
	return mapNode(
		"Type", strNode("AWS::SSO::Assignment"),
		"Properties", mapNode(
			"InstanceArn", strNode(instanceARN),
			"PrincipalType", strNode(record.Principal.Type),
			"PrincipalId", valueNode(record.Principal.ID),
			"PermissionSetArn", valueNode(record.PermissionSet),
			"TargetType", strNode(record.Target.Type),
			"TargetId", valueNode(record.Target.ID),
		),
	)
}

// valueNode renders a literal as a string scalar and a reference as a
// { Ref: name } mapping, the long-hand form of CloudFormation's !Ref.
func valueNode(v assign.Value) *yaml.Node {
	if v.Ref {
		return mapNode("Ref", strNode(v.Name))
	}
	return strNode(v.Name)
}

// strNode always tags the scalar as a string so numeric-looking values like
// account ids survive a round trip as strings.
func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// mapNode builds a mapping node from alternating key strings and value nodes.
func mapNode(pairs ...interface{}) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i < len(pairs); i += 2 {
		node.Content = append(node.Content, strNode(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return node
}
