package autograd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardValues(t *testing.T) {
	tests := []struct {
		name string
		got  func() *Value
		want float64
	}{
		{"add", func() *Value { return NewValue(2).Add(NewValue(-3)) }, -1},
		{"mul", func() *Value { return NewValue(2).Mul(NewValue(-3)) }, -6},
		{"sub", func() *Value { return NewValue(2).Sub(NewValue(-3)) }, 5},
		{"div", func() *Value { return NewValue(1).Div(NewValue(4)) }, 0.25},
		{"neg", func() *Value { return NewValue(2.5).Neg() }, -2.5},
		{"tanh", func() *Value { return NewValue(0.5).Tanh() }, math.Tanh(0.5)},
		{"exp", func() *Value { return NewValue(0.5).Exp() }, math.Exp(0.5)},
		{"pow", func() *Value { return NewValue(3).Pow(2) }, 9},
		{"add scalar", func() *Value { return NewValue(2).AddScalar(3) }, 5},
		{"scalar add", func() *Value { return NewValue(2).ScalarAdd(3) }, 5},
		{"scalar mul", func() *Value { return NewValue(2).ScalarMul(3) }, 6},
		{"sub scalar", func() *Value { return NewValue(2).SubScalar(3) }, -1},
		{"scalar sub", func() *Value { return NewValue(2).ScalarSub(3) }, 1},
		{"mul scalar", func() *Value { return NewValue(2).MulScalar(3) }, 6},
		{"div scalar", func() *Value { return NewValue(3).DivScalar(2) }, 1.5},
		{"scalar div", func() *Value { return NewValue(2).ScalarDiv(3) }, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got().Data, 1e-12)
		})
	}
}

func TestLeafHasNoOperation(t *testing.T) {
	a := NewValue(1.5)

	_, ok := a.Operation()
	assert.False(t, ok)
	assert.Nil(t, a.Children())
	assert.Zero(t, a.Grad)
}

func TestOperationsRecordProvenance(t *testing.T) {
	a := NewValue(2)
	b := NewValue(3)
	c := a.Mul(b)

	op, ok := c.Operation()
	require.True(t, ok)
	assert.Equal(t, OpMul, op)

	children := c.Children()
	require.Len(t, children, 2)
	assert.Same(t, a, children[0])
	assert.Same(t, b, children[1])
}

func TestPowRecordsExponentAsLeafOperand(t *testing.T) {
	a := NewValue(3)
	c := a.Pow(2)

	children := c.Children()
	require.Len(t, children, 2)
	assert.Same(t, a, children[0])
	assert.Equal(t, 2.0, children[1].Data)

	_, ok := children[1].Operation()
	assert.False(t, ok, "exponent should be a leaf")
}

func TestCommutedScalarFormsPreserveOperandOrder(t *testing.T) {
	v := NewValue(2)

	left := v.MulScalar(3).Children()
	require.Len(t, left, 2)
	assert.Same(t, v, left[0])

	right := v.ScalarMul(3).Children()
	require.Len(t, right, 2)
	assert.Same(t, v, right[1])
	assert.Equal(t, 3.0, right[0].Data)
}

func TestOperationsDoNotMutateInputs(t *testing.T) {
	a := NewValue(2)
	b := NewValue(3)

	a.Add(b)
	a.Mul(b)
	a.Tanh()

	assert.Equal(t, 2.0, a.Data)
	assert.Zero(t, a.Grad)
	assert.Nil(t, a.Children())
}

func TestChildrenReturnsDetachedCopy(t *testing.T) {
	a := NewValue(1)
	c := a.Add(NewValue(2))

	children := c.Children()
	children[0] = NewValue(99)

	assert.Same(t, a, c.Children()[0])
}

func TestDivisionByZeroFollowsIEEE(t *testing.T) {
	q := NewValue(1).Div(NewValue(0))
	assert.True(t, math.IsInf(q.Data, 1))
}

func TestGradAccumulatorHelpers(t *testing.T) {
	a := NewValue(0)
	a.SetGrad(1.5)
	a.AddGrad(0.5)
	a.AddGrad(-2)

	assert.InDelta(t, 0.0, a.Grad, 1e-12)
}

func TestStringRendersValueAndGrad(t *testing.T) {
	a := NewValue(2.5)
	a.SetGrad(0.5)

	assert.Equal(t, "[Value=2.5, Grad=0.5]", a.String())
}
