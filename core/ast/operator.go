package ast

// Operator is a binary operator.
type Operator int

const (
	Equal Operator = iota
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	Add
	Subtract
	Multiply
	Divide
)

var operatorSymbols = map[Operator]string{
	Equal:              "==",
	NotEqual:           "!=",
	LessThan:           "<",
	LessThanOrEqual:    "<=",
	GreaterThan:        ">",
	GreaterThanOrEqual: ">=",
	Add:                "+",
	Subtract:           "-",
	Multiply:           "*",
	Divide:             "/",
}

func (o Operator) String() string {
	if sym, ok := operatorSymbols[o]; ok {
		return sym
	}
	return "?"
}

// IsComparison returns true for operators that produce a boolean.
func (o Operator) IsComparison() bool {
	return o <= GreaterThanOrEqual
}

// ParseOperator looks up the operator written as sym.
func ParseOperator(sym string) (Operator, bool) {
	for op, s := range operatorSymbols {
		if s == sym {
			return op, true
		}
	}
	return 0, false
}
