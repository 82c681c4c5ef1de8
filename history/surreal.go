package history

import (
	"context"
	"fmt"

	"github.com/complexo-dev/complexo/result"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// Config holds the connection parameters for a SurrealDB-backed history
// store, the same shape as the teacher's db.Config.
type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// SurrealDB is a DB backed by a live SurrealDB connection.
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB connects to the SurrealDB instance at config.URL.
func NewSurrealDB(config Config) (*SurrealDB, error) {
	db, err := surrealdb.New(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &SurrealDB{db: db, config: config}, nil
}

// Initialize selects the namespace/database, authenticates, and applies the
// analysis-history schema.
func (s *SurrealDB) Initialize(ctx context.Context) error {
	if err := s.db.Use(s.config.Namespace, s.config.Database); err != nil {
		return fmt.Errorf("failed to set namespace/database: %w", err)
	}

	authData := &surrealdb.Auth{
		Username: s.config.Username,
		Password: s.config.Password,
	}
	token, err := s.db.SignIn(authData)
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	if err := s.db.Authenticate(token); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if _, err := surrealdb.Query[any](s.db, Schema, map[string]interface{}{}); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// record is the flat shape persisted to the "analyses" table; AnalysisResult
// itself carries fields (AST, Tree) that do not round-trip through SurrealDB
// cleanly, so storage uses this narrower projection.
type record struct {
	Filename            string `json:"filename"`
	FuncName            string `json:"func_name"`
	IsRecursive         bool   `json:"is_recursive"`
	RecursionPattern    string `json:"recursion_pattern"`
	MathComplexity      string `json:"math_complexity"`
	HeurComplexity      string `json:"heur_complexity"`
	HeurNotation        string `json:"heur_notation"`
	CanonicalComplexity string `json:"canonical_complexity"`
	ElapsedMS           int64  `json:"elapsed_ms"`
	Error               string `json:"error"`
}

// StoreAnalysis writes res to the analyses table.
func (s *SurrealDB) StoreAnalysis(ctx context.Context, res result.AnalysisResult) error {
	rec := record{
		Filename:            res.Filename,
		FuncName:            res.FuncName,
		IsRecursive:         res.IsRecursive,
		RecursionPattern:    string(res.RecursionPattern),
		MathComplexity:      res.MathComplexity,
		HeurComplexity:      res.HeurComplexity,
		HeurNotation:        string(res.HeurNotation),
		CanonicalComplexity: res.CanonicalComplexity,
		ElapsedMS:           res.ElapsedMS,
		Error:               res.Error,
	}
	if _, err := surrealdb.Create[record](s.db, models.Table("analyses"), rec); err != nil {
		return fmt.Errorf("error storing analysis for %s: %w", res.FuncName, err)
	}
	return nil
}
