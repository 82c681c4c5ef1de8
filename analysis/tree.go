package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/complexo-dev/complexo/result"
)

// TreeBuilder expands a recurrence relation's right-hand side into a
// two-level recursion-tree topology plus a textual level-cost breakdown, per
// spec §4.6.
//
// Grounded on original_source/src/analyzer/recurrence_tree_builder.py's
// TreeStructure: parse recursive terms out of the relation text with a
// regex, derive a height heuristic from their shape, then build root →
// children → grandchildren by applying each term's transformation rule to
// itself (this reproduces Fibonacci's characteristic n-1/n-2 asymmetry at
// the grandchild level).
type TreeBuilder struct{}

// NewTreeBuilder creates a TreeBuilder. It holds no state.
func NewTreeBuilder() *TreeBuilder { return &TreeBuilder{} }

var reRecursiveTerm = regexp.MustCompile(`(?:(\d+)\*?)?T\(([^)]+)\)`)

// Build parses relation (e.g. "T(n) = 2T(n/2) + O(n)") and returns its
// recursion-tree root, a height heuristic string, and a per-level cost
// breakdown.
func (b *TreeBuilder) Build(relation string) (*result.TreeNode, string, []string) {
	terms := parseRecursiveTerms(relation)
	root := &result.TreeNode{ID: "0", ProblemSize: "n", Level: 0}
	if len(terms) == 0 {
		return root, "0", []string{"level 0: 1 node, cost O(1)"}
	}

	for i, term := range terms {
		child := &result.TreeNode{
			ID:          fmt.Sprintf("1.%d", i),
			ProblemSize: term,
			Level:       1,
		}
		for j, rule := range terms {
			child.Children = append(child.Children, &result.TreeNode{
				ID:          fmt.Sprintf("2.%d.%d", i, j),
				ProblemSize: applyTransformation(term, rule),
				Level:       2,
			})
		}
		root.Children = append(root.Children, child)
	}

	height := estimateHeight(terms)
	costs := estimateLevelCosts(terms, height)
	return root, height, costs
}

// parseRecursiveTerms extracts each T(...) occurrence from relation's
// right-hand side, repeating a term `count` times when it carries an
// integer coefficient (e.g. "2T(n/2)" yields ["n/2", "n/2"]).
func parseRecursiveTerms(relation string) []string {
	rhs := relation
	if idx := strings.Index(relation, "="); idx >= 0 {
		rhs = relation[idx+1:]
	}
	rhs = strings.ReplaceAll(rhs, " ", "")

	var terms []string
	for _, m := range reRecursiveTerm.FindAllStringSubmatch(rhs, -1) {
		count := 1
		if m[1] != "" {
			if n, err := strconv.Atoi(m[1]); err == nil {
				count = n
			}
		}
		for i := 0; i < count; i++ {
			terms = append(terms, m[2])
		}
	}
	return terms
}

// estimateHeight derives a textual tree-height heuristic from the first
// recursive term's shape: a division yields log_b(n) levels, a decrement
// yields up to n levels (or n/k for a larger constant decrement).
func estimateHeight(terms []string) string {
	term := terms[0]
	switch {
	case strings.Contains(term, "/2"):
		return "log_2(n)"
	case strings.Contains(term, "/"):
		if m := regexp.MustCompile(`/(\d+)`).FindStringSubmatch(term); m != nil {
			return "log_" + m[1] + "(n)"
		}
		return "log_b(n)"
	case strings.Contains(term, "-1") && containsAny(terms, "-2"):
		return "n"
	case strings.Contains(term, "-1"):
		return "n"
	case strings.Contains(term, "-"):
		return "n/k"
	default:
		return "log(n)"
	}
}

func containsAny(terms []string, substr string) bool {
	for _, t := range terms {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// applyTransformation computes a grandchild's problem-size label by
// applying rule's reduction again to current, mirroring TreeStructure's
// division/subtraction composition (n/2 then n/2 -> n/4; n-1 then n-2 ->
// n-3).
func applyTransformation(current, rule string) string {
	switch {
	case strings.Contains(rule, "/"):
		divisor := extractInt(rule, "/", 2)
		if current == "n" {
			return fmt.Sprintf("n/%d", divisor)
		}
		if prev := extractInt(current, "/", 0); prev > 0 {
			return fmt.Sprintf("n/%d", prev*divisor)
		}
		return rule

	case strings.Contains(rule, "-"):
		subtrahend := extractInt(rule, "-", 0)
		if current == "n" {
			return rule
		}
		if prev := extractInt(current, "-", 0); prev > 0 {
			return fmt.Sprintf("n-%d", prev+subtrahend)
		}
		return rule

	default:
		return rule
	}
}

func extractInt(s, sep string, def int) int {
	idx := strings.LastIndex(s, sep)
	if idx < 0 || idx+1 >= len(s) {
		return def
	}
	n, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return def
	}
	return n
}

// estimateLevelCosts renders a human-readable per-level node count and
// problem size for levels 0-2 of the tree, followed by the height line: the
// `LevelCosts` field consumers render alongside the topology. The relation's
// non-recursive work term is not used, so no per-node work or total level
// cost is given.
func estimateLevelCosts(terms []string, height string) []string {
	branching := len(terms)
	lines := make([]string, 0, 3)
	nodes := 1
	for level := 0; level < 3; level++ {
		lines = append(lines, fmt.Sprintf("level %d: %d node(s), problem size ~%s", level, nodes, levelSizeLabel(terms, level)))
		nodes *= branching
	}
	lines = append(lines, fmt.Sprintf("height ~%s", height))
	return lines
}

func levelSizeLabel(terms []string, level int) string {
	if level == 0 {
		return "n"
	}
	size := terms[0]
	for i := 1; i < level; i++ {
		size = applyTransformation(size, terms[0])
	}
	return size
}
