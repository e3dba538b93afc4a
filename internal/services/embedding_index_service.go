package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"boulevard/internal/models/db_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

const embedTimeout = 30 * time.Second

type ReindexReport struct {
	Processed int
	Failed    []uuid.UUID
}

// EmbeddingIndexService computes embeddings for listings that have
// none. It is the only writer of the embedding column.
type EmbeddingIndexService interface {
	Reindex(ctx context.Context) (*ReindexReport, error)
}

type embeddingIndexService struct {
	establishments repositories.EstablishmentRepository
	embedder       utils.EmbeddingClientInterface
}

func NewEmbeddingIndexService(
	establishments repositories.EstablishmentRepository,
	embedder utils.EmbeddingClientInterface,
) EmbeddingIndexService {
	return &embeddingIndexService{
		establishments: establishments,
		embedder:       embedder,
	}
}

// indexText concatenates the fields the embedding is derived from.
func indexText(est *db_models.Establishment) string {
	parts := []string{est.Name}
	if est.Description != "" {
		parts = append(parts, est.Description)
	}
	for _, c := range est.Categories {
		parts = append(parts, c.Name)
	}
	for _, t := range est.Types {
		parts = append(parts, t.Name)
	}
	return strings.Join(parts, " ")
}

func (s *embeddingIndexService) Reindex(ctx context.Context) (*ReindexReport, error) {
	pending, err := s.establishments.FindMissingEmbedding(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	report := &ReindexReport{}
	for i := range pending {
		est := &pending[i]
		if err := s.reindexOne(ctx, est); err != nil {
			log.Printf("reindex of %s failed: %v", est.ID, err)
			report.Failed = append(report.Failed, est.ID)
			continue
		}
		report.Processed++
	}
	return report, nil
}

func (s *embeddingIndexService) reindexOne(ctx context.Context, est *db_models.Establishment) error {
	embedCtx, cancel := context.WithTimeout(ctx, embedTimeout)
	defer cancel()

	vec, err := s.embedder.GetEmbedding(embedCtx, indexText(est))
	if err != nil {
		return err
	}
	if got := len(vec.Slice()); got != utils.EmbeddingDimensions {
		return fmt.Errorf("unexpected embedding size %d, want %d", got, utils.EmbeddingDimensions)
	}
	return s.establishments.UpdateEmbedding(ctx, est.ID, vec)
}
