package autograd

import "math"

// Op tags the operation that produced a node.
//
// The catalog is deliberately closed: five differentiable primitives, each
// with one local derivative rule in the backward pass. Every derived
// operation (Neg, Sub, Div, the scalar-mixed forms) is built by composing
// primitives, so a node's tag always matches the derivative rule that will
// actually be applied to it.
type Op uint8

const (
	OpNone Op = iota // leaf: no producing operation
	OpAdd
	OpMul
	OpTanh
	OpExp
	OpPow
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpTanh:
		return "tanh"
	case OpExp:
		return "exp"
	case OpPow:
		return "pow"
	default:
		return "leaf"
	}
}

// Add creates node z = v + other.
// Local derivatives:
// dz/dv = 1
// dz/dother = 1
func (v *Value) Add(other *Value) *Value {
	return &Value{
		Data:     v.Data + other.Data,
		children: []*Value{v, other},
		op:       OpAdd,
	}
}

// Mul creates node z = v * other.
// Local derivatives:
// dz/dv = other
// dz/dother = v
func (v *Value) Mul(other *Value) *Value {
	return &Value{
		Data:     v.Data * other.Data,
		children: []*Value{v, other},
		op:       OpMul,
	}
}

// Tanh creates node z = tanh(v).
// Local derivative:
// dz/dv = 1 - tanh(v)^2 = 1 - z^2
func (v *Value) Tanh() *Value {
	return &Value{
		Data:     math.Tanh(v.Data),
		children: []*Value{v},
		op:       OpTanh,
	}
}

// Exp creates node z = e^v.
// Local derivative:
// dz/dv = e^v = z
func (v *Value) Exp() *Value {
	return &Value{
		Data:     math.Exp(v.Data),
		children: []*Value{v},
		op:       OpExp,
	}
}

// Pow creates node z = v^k.
//
// The exponent is wrapped as a leaf node and recorded as the second operand,
// so graph introspection sees it, but it is treated as a constant: backward
// sends it no gradient.
//
// Local derivative:
// dz/dv = k * v^(k-1)
func (v *Value) Pow(k float64) *Value {
	return &Value{
		Data:     math.Pow(v.Data, k),
		children: []*Value{v, NewValue(k)},
		op:       OpPow,
	}
}

// Neg creates node z = -v, as multiplication by a -1 leaf.
func (v *Value) Neg() *Value {
	return v.Mul(NewValue(-1))
}

// Sub creates node z = v - other, as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div creates node z = v / other, as v * other^-1.
//
// Division by a zero-valued operand is not guarded: other^-1 follows IEEE-754
// and yields an infinity or NaN that flows through forward and backward
// unchecked. Avoiding it is the caller's responsibility.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// The scalar-mixed forms below wrap the raw float as a leaf node, so it
// participates in the graph (and in backward) exactly like any other operand.
// The commuted variants record the scalar as the first operand, preserving
// the left-to-right order of the expression they stand in for.

// AddScalar creates node z = v + f.
func (v *Value) AddScalar(f float64) *Value {
	return &Value{
		Data:     v.Data + f,
		children: []*Value{v, NewValue(f)},
		op:       OpAdd,
	}
}

// ScalarAdd creates node z = f + v, the commuted form of AddScalar.
func (v *Value) ScalarAdd(f float64) *Value {
	return &Value{
		Data:     f + v.Data,
		children: []*Value{NewValue(f), v},
		op:       OpAdd,
	}
}

// SubScalar creates node z = v - f.
func (v *Value) SubScalar(f float64) *Value {
	return v.Sub(NewValue(f))
}

// ScalarSub creates node z = f - v, the commuted form of SubScalar.
func (v *Value) ScalarSub(f float64) *Value {
	return NewValue(f).Sub(v)
}

// MulScalar creates node z = v * f.
func (v *Value) MulScalar(f float64) *Value {
	return &Value{
		Data:     v.Data * f,
		children: []*Value{v, NewValue(f)},
		op:       OpMul,
	}
}

// ScalarMul creates node z = f * v, the commuted form of MulScalar.
func (v *Value) ScalarMul(f float64) *Value {
	return &Value{
		Data:     f * v.Data,
		children: []*Value{NewValue(f), v},
		op:       OpMul,
	}
}

// DivScalar creates node z = v / f.
func (v *Value) DivScalar(f float64) *Value {
	return v.Div(NewValue(f))
}

// ScalarDiv creates node z = f / v, the commuted form of DivScalar.
func (v *Value) ScalarDiv(f float64) *Value {
	return NewValue(f).Div(v)
}
