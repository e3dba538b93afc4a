package services

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/response_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type ChatService interface {
	ProcessMessage(ctx context.Context, message string) (*response_models.ChatResponse, error)
}

type chatService struct {
	establishments repositories.EstablishmentRepository
	taxonomy       repositories.TaxonomyRepository
	embedder       utils.EmbeddingClientInterface
}

func NewChatService(
	establishments repositories.EstablishmentRepository,
	taxonomy repositories.TaxonomyRepository,
	embedder utils.EmbeddingClientInterface,
) ChatService {
	return &chatService{
		establishments: establishments,
		taxonomy:       taxonomy,
		embedder:       embedder,
	}
}

const candidatePool = 20

// Thresholds on the best cosine score, and how many results each
// confidence tier returns.
const (
	highThreshold   = 0.5
	mediumThreshold = 0.35

	highLimit   = 6
	mediumLimit = 8
	lowLimit    = 10
)

// intentFamilies biases re-ranking toward listings whose category or
// type text mentions the intent detected in the query.
var intentFamilies = map[string][]string{
	"comida":          {"comida", "comer", "restaurante", "almuerzo", "cena", "desayuno", "menu", "menú", "pizza", "hamburguesa", "pollo", "ceviche"},
	"postre":          {"postre", "dulce", "helado", "pastel", "torta", "reposteria", "repostería"},
	"bebida":          {"bebida", "tomar", "cafe", "café", "jugo", "cerveza", "trago", "bar"},
	"entretenimiento": {"entretenimiento", "diversion", "diversión", "juego", "cine", "karaoke", "discoteca", "bailar"},
}

// cosineSimilarity returns dot(a,b) / (||a|| * ||b||), or 0 when either
// vector has zero norm or the lengths differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// detectFilters matches every known category and type name as a
// case-insensitive substring of the query. Plain substring comparison,
// so queries with regex metacharacters are taken literally.
func detectFilters(query string, categories []db_models.Category, types []db_models.BusinessType) (categoryIDs, typeIDs []uuid.UUID) {
	q := strings.ToLower(query)
	for _, c := range categories {
		if name := strings.ToLower(c.Name); name != "" && strings.Contains(q, name) {
			categoryIDs = append(categoryIDs, c.ID)
		}
	}
	for _, t := range types {
		if name := strings.ToLower(t.Name); name != "" && strings.Contains(q, name) {
			typeIDs = append(typeIDs, t.ID)
		}
	}
	return categoryIDs, typeIDs
}

// detectIntents returns the keyword families triggered by the query.
func detectIntents(query string) []string {
	q := strings.ToLower(query)
	var intents []string
	for _, family := range [...]string{"comida", "postre", "bebida", "entretenimiento"} {
		for _, keyword := range intentFamilies[family] {
			if strings.Contains(q, keyword) {
				intents = append(intents, family)
				break
			}
		}
	}
	return intents
}

type scoredEstablishment struct {
	est   *db_models.Establishment
	score float64
}

func taxonomyText(est *db_models.Establishment) string {
	var parts []string
	for _, c := range est.Categories {
		parts = append(parts, c.Name)
	}
	for _, t := range est.Types {
		parts = append(parts, t.Name)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func matchesIntent(est *db_models.Establishment, intents []string) bool {
	text := taxonomyText(est)
	for _, intent := range intents {
		for _, keyword := range intentFamilies[intent] {
			if strings.Contains(text, keyword) {
				return true
			}
		}
	}
	return false
}

// rerankByIntent moves intent-matching listings ahead of the rest,
// keeping the similarity order inside each group.
func rerankByIntent(scored []scoredEstablishment, intents []string) {
	if len(intents) == 0 {
		return
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return matchesIntent(scored[i].est, intents) && !matchesIntent(scored[j].est, intents)
	})
}

func confidenceTier(topScore float64) (string, int) {
	switch {
	case topScore > highThreshold:
		return response_models.ConfidenceHigh, highLimit
	case topScore > mediumThreshold:
		return response_models.ConfidenceMedium, mediumLimit
	default:
		return response_models.ConfidenceLow, lowLimit
	}
}

func (s *chatService) ProcessMessage(ctx context.Context, message string) (*response_models.ChatResponse, error) {
	query := strings.TrimSpace(message)
	if query == "" {
		return nil, utils.ErrEmptyMessage
	}

	categories, err := s.taxonomy.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	types, err := s.taxonomy.ListTypes(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	categoryIDs, typeIDs := detectFilters(query, categories, types)

	candidates, err := s.establishments.FindEmbedded(ctx, categoryIDs, typeIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(candidates) == 0 && (len(categoryIDs) > 0 || len(typeIDs) > 0) {
		candidates, err = s.establishments.FindEmbedded(ctx, nil, nil)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	// Nothing has ever been embedded: plain text search.
	if len(candidates) == 0 {
		return s.textSearch(ctx, query)
	}

	queryVec, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("query embedding failed: %v", err)
		return nil, utils.ErrEmbeddingUnavailable
	}
	qv := queryVec.Slice()

	scored := make([]scoredEstablishment, 0, len(candidates))
	for i := range candidates {
		est := &candidates[i]
		score := 0.0
		if est.Embedding != nil {
			score = cosineSimilarity(qv, est.Embedding.Slice())
		}
		scored = append(scored, scoredEstablishment{est: est, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > candidatePool {
		scored = scored[:candidatePool]
	}

	// The tier and the reported score belong to the best cosine match.
	// Capture it before the intent re-rank reorders the pool.
	topScore := scored[0].score

	rerankByIntent(scored, detectIntents(query))

	confidence, limit := confidenceTier(topScore)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	records := make([]response_models.DisplayRecord, 0, len(scored))
	for _, sc := range scored {
		records = append(records, toDisplayRecord(sc.est, sc.score))
	}

	return &response_models.ChatResponse{
		Reply:      composeReply(records, confidence),
		Found:      len(records),
		Results:    records,
		Method:     response_models.MethodSemantic,
		Confidence: confidence,
		TopScore:   topScore,
	}, nil
}

func (s *chatService) textSearch(ctx context.Context, query string) (*response_models.ChatResponse, error) {
	matches, err := s.establishments.SearchByText(ctx, query)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(matches) == 0 {
		return &response_models.ChatResponse{
			Reply:   composeReply(nil, response_models.ConfidenceNone),
			Found:   0,
			Results: []response_models.DisplayRecord{},
			Method:  response_models.MethodNone,
		}, nil
	}

	if len(matches) > lowLimit {
		matches = matches[:lowLimit]
	}
	records := make([]response_models.DisplayRecord, 0, len(matches))
	for i := range matches {
		records = append(records, toDisplayRecord(&matches[i], 0))
	}
	return &response_models.ChatResponse{
		Reply:   composeReply(records, response_models.ConfidenceHigh),
		Found:   len(records),
		Results: records,
		Method:  response_models.MethodText,
	}, nil
}
