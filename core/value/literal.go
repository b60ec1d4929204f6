package value

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/josephlewis42/structsh/core/ast"
)

// FromLeaf converts a terminal literal into its value. Only unit literals
// can fail, when they don't fit in 64 bits.
func FromLeaf(leaf *ast.Leaf) (Value, error) {
	switch leaf.Kind {
	case ast.LeafBoolean:
		return Boolean(leaf.Bool), nil
	case ast.LeafInt:
		return Int(leaf.Int), nil
	case ast.LeafUnit:
		return FromUnit(leaf.Int, leaf.Unit)
	default:
		// Bare words and quoted strings are both strings.
		return String(leaf.Text), nil
	}
}

var unitScale = map[ast.Unit]int64{
	ast.UnitB:           humanize.Byte,
	ast.UnitKB:          humanize.KiByte,
	ast.UnitMB:          humanize.MiByte,
	ast.UnitGB:          humanize.GiByte,
	ast.UnitTB:          humanize.TiByte,
	ast.UnitPB:          humanize.PiByte,
	ast.UnitMillisecond: int64(time.Millisecond),
	ast.UnitSecond:      int64(time.Second),
	ast.UnitMinute:      int64(time.Minute),
	ast.UnitHour:        int64(time.Hour),
	ast.UnitDay:         int64(24 * time.Hour),
}

// FromUnit expands n of the given unit: sizes become Bytes and times become
// Duration.
func FromUnit(n int64, unit ast.Unit) (Value, error) {
	scale, ok := unitScale[unit]
	if !ok {
		return nil, fmt.Errorf("unknown unit %s", unit)
	}
	if n > math.MaxInt64/scale || n < math.MinInt64/scale {
		return nil, fmt.Errorf("%d%s is out of range", n, unit)
	}

	scaled := n * scale
	if unit.IsSize() {
		return Bytes(scaled), nil
	}
	return Duration(scaled), nil
}

// Compare orders two values of compatible types. Int and Bytes compare as
// numbers.
func Compare(a, b Value) (int, error) {
	switch a := a.(type) {
	case Int:
		if n, ok := number(b); ok {
			return cmpInt64(int64(a), n), nil
		}
	case Bytes:
		if n, ok := number(b); ok {
			return cmpInt64(int64(a), n), nil
		}
	case Duration:
		if d, ok := b.(Duration); ok {
			return cmpInt64(int64(a), int64(d)), nil
		}
	case String:
		if s, ok := b.(String); ok {
			switch {
			case a < s:
				return -1, nil
			case a > s:
				return 1, nil
			}
			return 0, nil
		}
	case Boolean:
		if o, ok := b.(Boolean); ok {
			return cmpInt64(boolInt(bool(a)), boolInt(bool(o))), nil
		}
	}

	return 0, fmt.Errorf("can't compare %s with %s", typeName(a), typeName(b))
}

func number(v Value) (int64, bool) {
	switch v := v.(type) {
	case Int:
		return int64(v), true
	case Bytes:
		return int64(v), true
	}
	return 0, false
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func typeName(v Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Type()
}
