package expr_test

import (
	"testing"

	"github.com/complexo-dev/complexo/ast"
	"github.com/complexo-dev/complexo/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ToStringRendersBinOp(t *testing.T) {
	c := expr.NewCache(8)
	e := &ast.BinOp{
		Op:    "-",
		Left:  &ast.Var{Name: "n"},
		Right: &ast.Number{Value: 1},
	}
	assert.Equal(t, "n - 1", c.ToString(e))
}

func TestCache_ToStringCachesByIdentity(t *testing.T) {
	c := expr.NewCache(8)
	e := &ast.Var{Name: "x"}

	first := c.ToString(e)
	_, ok := c.Get(e)
	require.True(t, ok)

	second := c.ToString(e)
	assert.Equal(t, first, second)
}

func TestCache_ClearEmptiesEntries(t *testing.T) {
	c := expr.NewCache(8)
	e := &ast.Number{Value: 42}
	c.ToString(e)

	c.Clear()
	_, ok := c.Get(e)
	assert.False(t, ok)
}

func TestCache_ToStringRendersCall(t *testing.T) {
	c := expr.NewCache(8)
	e := &ast.Call{
		Name: "factorial",
		Args: []ast.Expr{&ast.Var{Name: "n"}},
	}
	assert.Equal(t, "call factorial(n)", c.ToString(e))
}
