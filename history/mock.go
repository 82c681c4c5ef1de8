package history

import (
	"context"

	"github.com/complexo-dev/complexo/result"
)

// MockDB is a DB whose behavior is configured per-call, for exercising the
// "--store" path without a live SurrealDB instance, mirroring the teacher's
// db.MockDB.
type MockDB struct {
	InitializeFunc    func(ctx context.Context) error
	StoreAnalysisFunc func(ctx context.Context, res result.AnalysisResult) error
}

// NewMockDB creates a MockDB whose Initialize succeeds and whose
// StoreAnalysis is a no-op unless overridden.
func NewMockDB() *MockDB {
	return &MockDB{
		InitializeFunc: func(ctx context.Context) error { return nil },
	}
}

func (m *MockDB) Initialize(ctx context.Context) error {
	return m.InitializeFunc(ctx)
}

func (m *MockDB) StoreAnalysis(ctx context.Context, res result.AnalysisResult) error {
	if m.StoreAnalysisFunc != nil {
		return m.StoreAnalysisFunc(ctx, res)
	}
	return nil
}
