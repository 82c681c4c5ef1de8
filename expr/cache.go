// Package expr holds the symbolic cost model the mathematical engine builds
// over pseudocode ASTs (CostExpr) and an LRU-backed stringifier for
// pseudocode ast.Expr subtrees, used by the recursion classifier to render
// self-call arguments and base-case conditions without recomputing the same
// subtree's text.
package expr

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/complexo-dev/complexo/ast"
	"github.com/golang/groupcache/lru"
)

// Cache caches the string representation of pseudocode ast.Expr nodes,
// mirroring the teacher's ExprCache for go/ast.Expr: same Get/Put/ToString/
// Clear shape. Every lookup takes the write lock, because an LRU lookup also
// updates recency; rendering runs outside the lock, so nested subexpressions
// are rendered and cached through ToString recursively.
type Cache struct {
	mu    sync.RWMutex
	cache *lru.Cache
}

// NewCache creates a Cache holding at most size entries.
func NewCache(size int) *Cache {
	return &Cache{cache: lru.New(size)}
}

// Get returns the cached string for expr, if present.
func (c *Cache) Get(e ast.Expr) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if val, ok := c.cache.Get(e); ok {
		return val.(string), true
	}
	return "", false
}

// Put records the string representation for expr.
func (c *Cache) Put(e ast.Expr, s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(e, s)
}

// ToString renders e as pseudocode source text, using the cache to avoid
// recomputing the same subtree's text across engines.
func (c *Cache) ToString(e ast.Expr) string {
	if e == nil {
		return ""
	}
	if val, ok := c.Get(e); ok {
		return val
	}

	result := c.render(e)
	c.Put(e, result)
	return result
}

func (c *Cache) render(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Var:
		return n.Name
	case *ast.Number:
		return strconv.FormatInt(n.Value, 10)
	case *ast.Boolean:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.BinOp:
		return c.ToString(n.Left) + " " + n.Op + " " + c.ToString(n.Right)
	case *ast.UnaryOp:
		return n.Op + c.ToString(n.Operand)
	case *ast.Condition:
		return c.ToString(n.Left) + " " + n.Op + " " + c.ToString(n.Right)
	case *ast.BoolOp:
		return c.ToString(n.Left) + " " + n.Op + " " + c.ToString(n.Right)
	case *ast.Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = c.ToString(a)
		}
		return "call " + n.Name + "(" + joinComma(args) + ")"
	case *ast.ArrayAccess:
		return n.Name + "[" + c.ToString(n.Index) + "]"
	case *ast.MatrixAccess:
		return n.Name + "[" + c.ToString(n.Row) + "][" + c.ToString(n.Col) + "]"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}
