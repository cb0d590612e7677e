package template

import (
	"github.com/benkehoe/aws-sso-cfn-helper/internal/assign"
)

// DefaultMaxResourcesPerTemplate bounds a single CloudFormation template.
// CloudFormation itself allows 500 resources per stack; 200 keeps templates
// reviewable and leaves room for additions.
const DefaultMaxResourcesPerTemplate = 200

// Document is one bounded-size output unit: a contiguous slice of the global
// assignment sequence that fits in a single template.
type Document []assign.Assignment

// Partition slices records into documents of at most maxPerDoc entries,
// preserving global order; the last document may be short. Concatenating the
// documents in order reproduces records exactly. An empty input still yields
// one empty document so the caller always has something to write. A
// non-positive bound is a configuration error and produces nothing.
func Partition(records []assign.Assignment, maxPerDoc int) ([]Document, error) {
	if maxPerDoc < 1 {
		return nil, assign.NewConfigError("max resources per template must be positive, got %d", maxPerDoc)
	}

	if len(records) == 0 {
		return []Document{{}}, nil
	}

	docs := make([]Document, 0, (len(records)+maxPerDoc-1)/maxPerDoc)
	for start := 0; start < len(records); start += maxPerDoc {
		end := start + maxPerDoc
		if end > len(records) {
			end = len(records)
		}
		docs = append(docs, Document(records[start:end]))
	}
	return docs, nil
}
