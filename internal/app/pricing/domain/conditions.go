package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Operator is a leaf comparison operator in a condition tree.
type Operator string

const (
	OpEquals     Operator = "EQUALS"
	OpNotEquals  Operator = "NOT_EQUALS"
	OpIn         Operator = "IN"
	OpNotIn      Operator = "NOT_IN"
	OpGT         Operator = "GT"
	OpLT         Operator = "LT"
	OpGTE        Operator = "GTE"
	OpLTE        Operator = "LTE"
	OpBetween    Operator = "BETWEEN"
	OpContains   Operator = "CONTAINS"
	OpStartsWith Operator = "STARTS_WITH"
	OpEndsWith   Operator = "ENDS_WITH"
	OpRegex      Operator = "REGEX"
	OpIsNull     Operator = "IS_NULL"
	OpIsNotNull  Operator = "IS_NOT_NULL"
)

var knownOperators = map[Operator]bool{
	OpEquals: true, OpNotEquals: true,
	OpIn: true, OpNotIn: true,
	OpGT: true, OpLT: true, OpGTE: true, OpLTE: true, OpBetween: true,
	OpContains: true, OpStartsWith: true, OpEndsWith: true, OpRegex: true,
	OpIsNull: true, OpIsNotNull: true,
}

// ConditionNode is the tagged union of a boolean condition tree:
// exactly one of And, Or, Not, or the leaf triple (Field, Operator, Value)
// is populated. The union shape is enforced at deserialization time;
// semantic validity (known operator, value arity) is checked by Validate.
type ConditionNode struct {
	And   []*ConditionNode
	Or    []*ConditionNode
	Not   *ConditionNode
	Field string
	Op    Operator
	Value any
}

// IsLeaf reports whether the node is a field/operator/value leaf.
func (n *ConditionNode) IsLeaf() bool {
	return n.And == nil && n.Or == nil && n.Not == nil
}

type rawNode struct {
	And      []json.RawMessage `json:"AND"`
	Or       []json.RawMessage `json:"OR"`
	Not      json.RawMessage   `json:"NOT"`
	Field    *string           `json:"field"`
	Operator *string           `json:"operator"`
	Value    any               `json:"value"`
}

// UnmarshalJSON decodes a condition tree, rejecting shapes that are neither
// a single logical group nor a leaf.
func (n *ConditionNode) UnmarshalJSON(data []byte) error {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConditionTree, err)
	}

	groups := 0
	if raw.And != nil {
		groups++
	}
	if raw.Or != nil {
		groups++
	}
	if raw.Not != nil {
		groups++
	}
	if groups > 1 {
		return fmt.Errorf("%w: node mixes AND/OR/NOT branches", ErrInvalidConditionTree)
	}

	switch {
	case raw.And != nil:
		children, err := decodeChildren(raw.And)
		if err != nil {
			return err
		}
		n.And = children
	case raw.Or != nil:
		children, err := decodeChildren(raw.Or)
		if err != nil {
			return err
		}
		n.Or = children
	case raw.Not != nil:
		child := &ConditionNode{}
		if err := json.Unmarshal(raw.Not, child); err != nil {
			return err
		}
		n.Not = child
	default:
		if raw.Field == nil && raw.Operator == nil {
			return fmt.Errorf("%w: node is neither a group nor a leaf", ErrInvalidConditionTree)
		}
		if raw.Field != nil {
			n.Field = *raw.Field
		}
		if raw.Operator != nil {
			n.Op = Operator(*raw.Operator)
		}
		n.Value = raw.Value
	}
	return nil
}

func decodeChildren(raws []json.RawMessage) ([]*ConditionNode, error) {
	children := make([]*ConditionNode, 0, len(raws))
	for _, r := range raws {
		child := &ConditionNode{}
		if err := json.Unmarshal(r, child); err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// MarshalJSON renders the tree back into its wire form.
func (n *ConditionNode) MarshalJSON() ([]byte, error) {
	switch {
	case n.And != nil:
		return json.Marshal(map[string]any{"AND": n.And})
	case n.Or != nil:
		return json.Marshal(map[string]any{"OR": n.Or})
	case n.Not != nil:
		return json.Marshal(map[string]any{"NOT": n.Not})
	default:
		return json.Marshal(map[string]any{
			"field":    n.Field,
			"operator": string(n.Op),
			"value":    n.Value,
		})
	}
}

// ParseConditions decodes a JSON condition tree.
func ParseConditions(data []byte) (*ConditionNode, error) {
	if len(data) == 0 {
		return nil, ErrInvalidConditionTree
	}
	node := &ConditionNode{}
	if err := json.Unmarshal(data, node); err != nil {
		if strings.Contains(err.Error(), ErrInvalidConditionTree.Error()) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConditionTree, err)
	}
	return node, nil
}

// Evaluate interprets the tree against a context. An empty AND is true, an
// empty OR is false, NOT negates its child. A leaf whose field resolves to
// a missing value is vacuously false for every operator except IS_NULL and
// IS_NOT_NULL; the same policy applies to an unknown operator. Evaluation
// is total: it never fails, it only answers false.
func (n *ConditionNode) Evaluate(ctx *PricingContext) bool {
	switch {
	case n.And != nil:
		for _, child := range n.And {
			if !child.Evaluate(ctx) {
				return false
			}
		}
		return true
	case n.Or != nil:
		for _, child := range n.Or {
			if child.Evaluate(ctx) {
				return true
			}
		}
		return false
	case n.Not != nil:
		return !n.Not.Evaluate(ctx)
	}
	return n.evaluateLeaf(ctx)
}

func (n *ConditionNode) evaluateLeaf(ctx *PricingContext) bool {
	val, present := ctx.Field(n.Field)
	if val == nil {
		present = false
	}

	switch n.Op {
	case OpIsNull:
		return !present
	case OpIsNotNull:
		return present
	}
	if !present {
		// Vacuously false: a missing value matches nothing.
		return false
	}

	switch n.Op {
	case OpEquals:
		return coerceString(val) == coerceString(n.Value)
	case OpNotEquals:
		return coerceString(val) != coerceString(n.Value)
	case OpIn:
		return membership(val, n.Value)
	case OpNotIn:
		arr, ok := n.Value.([]any)
		if !ok {
			return false
		}
		return !membership(val, arr)
	case OpGT, OpLT, OpGTE, OpLTE:
		return compareNumeric(n.Op, val, n.Value)
	case OpBetween:
		return betweenNumeric(val, n.Value)
	case OpContains:
		return strings.Contains(coerceString(val), coerceString(n.Value))
	case OpStartsWith:
		return strings.HasPrefix(coerceString(val), coerceString(n.Value))
	case OpEndsWith:
		return strings.HasSuffix(coerceString(val), coerceString(n.Value))
	case OpRegex:
		re, err := regexp.Compile(coerceString(n.Value))
		if err != nil {
			return false
		}
		return re.MatchString(coerceString(val))
	}
	return false
}

func membership(val, arrVal any) bool {
	arr, ok := arrVal.([]any)
	if !ok {
		return false
	}
	s := coerceString(val)
	for _, item := range arr {
		if s == coerceString(item) {
			return true
		}
	}
	return false
}

func compareNumeric(op Operator, val, condVal any) bool {
	a, ok := coerceNumber(val)
	if !ok {
		return false
	}
	b, ok := coerceNumber(condVal)
	if !ok {
		return false
	}
	cmp := a.Cmp(b)
	switch op {
	case OpGT:
		return cmp > 0
	case OpLT:
		return cmp < 0
	case OpGTE:
		return cmp >= 0
	case OpLTE:
		return cmp <= 0
	}
	return false
}

func betweenNumeric(val, condVal any) bool {
	bounds, ok := condVal.([]any)
	if !ok || len(bounds) != 2 {
		return false
	}
	v, ok := coerceNumber(val)
	if !ok {
		return false
	}
	lo, ok := coerceNumber(bounds[0])
	if !ok {
		return false
	}
	hi, ok := coerceNumber(bounds[1])
	if !ok {
		return false
	}
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}

// coerceString renders a value for string comparison. JSON numbers come in
// as float64; whole values render without a fractional part ("5", not "5.0")
// so numeric-looking strings compare as written.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case decimal.Decimal:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func coerceNumber(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case float64:
		return decimal.NewFromFloat(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
