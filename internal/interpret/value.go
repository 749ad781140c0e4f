package interpret

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a literal or runtime value. The set of implementations is closed.
type Value interface {
	fmt.Stringer
	fmt.GoStringer
	value()
}

type StringValue string

type NumberValue float64

type BooleanValue bool

type NilValue struct{}

func (StringValue) value()  {}
func (NumberValue) value()  {}
func (BooleanValue) value() {}
func (NilValue) value()     {}

func (s StringValue) String() string {
	return string(s)
}

func (n NumberValue) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (b BooleanValue) String() string {
	return strconv.FormatBool(bool(b))
}

func (NilValue) String() string {
	return "nil"
}

func (s StringValue) GoString() string {
	return fmt.Sprintf("String(%q)", string(s))
}

func (n NumberValue) GoString() string {
	return fmt.Sprintf("Number(%s)", n.String())
}

func (b BooleanValue) GoString() string {
	return fmt.Sprintf("Boolean(%s)", b.String())
}

func (NilValue) GoString() string {
	return "Nil"
}

// Equal compares two values structurally. Values of different kinds are
// never equal, and a nil Value (no value) only equals another nil Value.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// Display renders v for output, with no value rendered as an empty string.
func Display(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}
