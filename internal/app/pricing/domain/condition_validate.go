package domain

import "fmt"

// ValidationResult is the admin-tooling report for a condition tree.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate walks the tree and reports every semantic problem: missing or
// invalid field, unknown operator, array-required-but-missing for
// IN/NOT_IN/BETWEEN, and a missing value for value-requiring operators.
// It is used by admin tooling before a tree is stored; evaluation never
// calls it.
func (n *ConditionNode) Validate() ValidationResult {
	var errs []string
	n.validate("$", &errs)
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func (n *ConditionNode) validate(path string, errs *[]string) {
	switch {
	case n.And != nil:
		for i, child := range n.And {
			child.validate(fmt.Sprintf("%s.AND[%d]", path, i), errs)
		}
	case n.Or != nil:
		for i, child := range n.Or {
			child.validate(fmt.Sprintf("%s.OR[%d]", path, i), errs)
		}
	case n.Not != nil:
		n.Not.validate(path+".NOT", errs)
	default:
		n.validateLeaf(path, errs)
	}
}

func (n *ConditionNode) validateLeaf(path string, errs *[]string) {
	if n.Field == "" {
		*errs = append(*errs, fmt.Sprintf("%s: missing field", path))
	}
	if n.Op == "" {
		*errs = append(*errs, fmt.Sprintf("%s: missing operator", path))
		return
	}
	if !knownOperators[n.Op] {
		*errs = append(*errs, fmt.Sprintf("%s: unknown operator %q", path, n.Op))
		return
	}

	switch n.Op {
	case OpIsNull, OpIsNotNull:
		// No value needed.
	case OpIn, OpNotIn:
		arr, ok := n.Value.([]any)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("%s: operator %s requires an array value", path, n.Op))
		} else if len(arr) == 0 {
			*errs = append(*errs, fmt.Sprintf("%s: operator %s requires a non-empty array value", path, n.Op))
		}
	case OpBetween:
		arr, ok := n.Value.([]any)
		if !ok || len(arr) != 2 {
			*errs = append(*errs, fmt.Sprintf("%s: operator BETWEEN requires a [min, max] pair", path))
		}
	default:
		if n.Value == nil {
			*errs = append(*errs, fmt.Sprintf("%s: operator %s requires a value", path, n.Op))
		}
	}
}
