package analysis_test

import (
	"strings"
	"testing"

	"github.com/complexo-dev/complexo/analysis"
	"github.com/complexo-dev/complexo/parser"
	"github.com/stretchr/testify/require"
)

func mathAnalyze(t *testing.T, src string) (string, string) {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	require.NotEmpty(t, prog.Functions)
	return analysis.NewMathEngine().Analyze(prog.Functions[0])
}

func TestMathEngine_ConstantFunctionHasConstantComplexity(t *testing.T) {
	_, complexity := mathAnalyze(t, `function c(n) begin x = 5; y = x + 10; return y end`)
	require.Equal(t, "1", complexity)
}

func TestMathEngine_RecursiveFunctionProducesARecurrenceEquation(t *testing.T) {
	rawCost, complexity := mathAnalyze(t, `
function factorial(n)
begin
  if n <= 1 then begin return 1 end
  else begin return n * call factorial(n - 1) end
end
`)
	require.True(t, strings.HasPrefix(rawCost, "T(n) ="))
	require.NotEmpty(t, complexity)
}

func TestMathEngine_SymbolicLoopBoundsProduceASigmaExpression(t *testing.T) {
	rawCost, _ := mathAnalyze(t, `
function stress(n)
begin
  s = 0
  for i=1 to n do for j=1 to n do for k=1 to n do for t=1 to n do begin s = s + 1 end
  return s
end
`)
	require.Contains(t, rawCost, "Σ")
}
