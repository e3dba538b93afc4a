package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulevard/internal/models/db_models"
	"boulevard/pkg/utils"
)

func validVector() []float32 {
	return make([]float32, utils.EmbeddingDimensions)
}

func pending(name string) db_models.Establishment {
	return db_models.Establishment{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      name,
	}
}

func TestReindexProcessesAllPending(t *testing.T) {
	repo := newFakeEstablishmentRepo(pending("A"), pending("B"), pending("C"))
	svc := NewEmbeddingIndexService(repo, &fakeEmbedder{vec: validVector()})

	report, err := svc.Reindex(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Processed)
	assert.Empty(t, report.Failed)
	assert.Len(t, repo.embeddingUpdates, 3)
}

func TestReindexIsIdempotent(t *testing.T) {
	repo := newFakeEstablishmentRepo(pending("A"))
	svc := NewEmbeddingIndexService(repo, &fakeEmbedder{vec: validVector()})

	first, err := svc.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Processed)

	second, err := svc.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Empty(t, second.Failed)
}

// A per-item embedding failure is recorded and skipped, not fatal.
func TestReindexIsolatesFailures(t *testing.T) {
	repo := newFakeEstablishmentRepo(pending("A"), pending("B"))
	embedder := &failNthEmbedder{failOn: 1, vec: validVector()}
	svc := NewEmbeddingIndexService(repo, embedder)

	report, err := svc.Reindex(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	require.Len(t, report.Failed, 1)
	assert.Len(t, repo.embeddingUpdates, 1)
}

func TestReindexRejectsWrongDimensions(t *testing.T) {
	repo := newFakeEstablishmentRepo(pending("A"))
	svc := NewEmbeddingIndexService(repo, &fakeEmbedder{vec: []float32{1, 2, 3}})

	report, err := svc.Reindex(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Processed)
	assert.Len(t, report.Failed, 1)
	assert.Empty(t, repo.embeddingUpdates)
}

func TestIndexTextConcatenation(t *testing.T) {
	est := db_models.Establishment{
		Name:        "La Esquina",
		Description: "Comida criolla",
		Categories:  []db_models.Category{{Name: "Comida"}},
		Types:       []db_models.BusinessType{{Name: "Restaurante"}},
	}
	assert.Equal(t, "La Esquina Comida criolla Comida Restaurante", indexText(&est))

	minimal := db_models.Establishment{Name: "Solo"}
	assert.Equal(t, "Solo", indexText(&minimal))
}

type failNthEmbedder struct {
	failOn int
	vec    []float32
	n      int
}

func (f *failNthEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	f.n++
	if f.n == f.failOn {
		return pgvector.Vector{}, errors.New("embedding backend error")
	}
	return pgvector.NewVector(f.vec), nil
}

func (f *failNthEmbedder) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	out := make([]pgvector.Vector, 0, len(texts))
	for range texts {
		vec, err := f.GetEmbedding(ctx, "")
		if err != nil {
			return nil, err
		}
		out = append(out, vec)
	}
	return out, nil
}
