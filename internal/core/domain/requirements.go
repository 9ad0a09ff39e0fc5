// Package domain contains the core domain models and business logic for npm dependency aggregation.
package domain

import (
	"encoding/json"
	"fmt"
)

// Requirements maps npm package names to version constraints.
// It is built fresh for every install location on every run.
//
// A constraint is a string, or a json.Number when it was declared as a bare
// number such as 3. Numbers are written back to package.json as numbers.
type Requirements map[string]any

// Merge returns a new Requirements holding r combined with incoming.
//
// A package missing from r is inserted unchanged. A package present with the same
// constraint text is left alone, so 3 and "3" count as equal and the first is kept.
// A package present with a different constraint gets both constraints joined by a
// single space, which npm reads as an intersection. The joined constraint is a string.
// Constraints are never parsed or validated here.
//
// The result depends on call order: merging {a: "1"} then {a: "2"} yields "1 2",
// the reverse yields "2 1".
func (r Requirements) Merge(incoming Requirements) Requirements {
	merged := make(Requirements, len(r)+len(incoming))
	for name, constraint := range r {
		merged[name] = constraint
	}

	for name, constraint := range incoming {
		existing, ok := merged[name]
		switch {
		case !ok:
			merged[name] = constraint
		case ConstraintText(existing) != ConstraintText(constraint):
			merged[name] = ConstraintText(existing) + " " + ConstraintText(constraint)
		}
	}

	return merged
}

// ConstraintText returns the textual form of a constraint.
func ConstraintText(constraint any) string {
	switch c := constraint.(type) {
	case string:
		return c
	case json.Number:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}
