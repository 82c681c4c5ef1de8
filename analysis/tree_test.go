package analysis_test

import (
	"testing"

	"github.com/complexo-dev/complexo/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeBuilder_DivideAndConquerHasLogHeight(t *testing.T) {
	b := analysis.NewTreeBuilder()
	root, height, costs := b.Build("T(n) = 2T(n/2) + O(n)")

	require.NotNil(t, root)
	assert.Equal(t, "0", root.ID)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "n/2", root.Children[0].ProblemSize)
	require.Len(t, root.Children[0].Children, 2)
	assert.Equal(t, "n/4", root.Children[0].Children[0].ProblemSize)
	assert.Equal(t, "log_2(n)", height)
	assert.NotEmpty(t, costs)
}

func TestTreeBuilder_FibonacciShapedHasLinearHeight(t *testing.T) {
	b := analysis.NewTreeBuilder()
	root, height, _ := b.Build("T(n) = T(n-1) + T(n-2) + O(1)")

	require.Len(t, root.Children, 2)
	assert.Equal(t, "n-1", root.Children[0].ProblemSize)
	assert.Equal(t, "n-2", root.Children[1].ProblemSize)
	assert.Equal(t, "n", height)
}

func TestTreeBuilder_NoRecursiveTermYieldsTrivialTree(t *testing.T) {
	b := analysis.NewTreeBuilder()
	root, height, costs := b.Build("T(n) = c*n^4")

	assert.Empty(t, root.Children)
	assert.Equal(t, "0", height)
	require.Len(t, costs, 1)
}
