package history_test

import (
	"context"
	"errors"
	"testing"

	"github.com/complexo-dev/complexo/history"
	"github.com/complexo-dev/complexo/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDB_InitializeDefaultsToSuccess(t *testing.T) {
	db := history.NewMockDB()
	require.NoError(t, db.Initialize(context.Background()))
}

func TestMockDB_StoreAnalysisDefaultsToNoop(t *testing.T) {
	db := history.NewMockDB()
	err := db.StoreAnalysis(context.Background(), result.AnalysisResult{FuncName: "factorial"})
	require.NoError(t, err)
}

func TestMockDB_StoreAnalysisHonorsOverride(t *testing.T) {
	db := history.NewMockDB()
	var captured result.AnalysisResult
	db.StoreAnalysisFunc = func(ctx context.Context, res result.AnalysisResult) error {
		captured = res
		return errors.New("store failed")
	}

	err := db.StoreAnalysis(context.Background(), result.AnalysisResult{FuncName: "fib"})
	assert.EqualError(t, err, "store failed")
	assert.Equal(t, "fib", captured.FuncName)
}
