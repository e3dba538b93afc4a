package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/response_models"
	"boulevard/pkg/utils"
)

// ---------------------------------------------------------------
// in-memory fakes
// ---------------------------------------------------------------

type fakeEstablishmentRepo struct {
	ests      []db_models.Establishment
	followers []db_models.User

	embeddingUpdates map[uuid.UUID]pgvector.Vector
	findEmbeddedCall int
}

func newFakeEstablishmentRepo(ests ...db_models.Establishment) *fakeEstablishmentRepo {
	return &fakeEstablishmentRepo{
		ests:             ests,
		embeddingUpdates: make(map[uuid.UUID]pgvector.Vector),
	}
}

func (f *fakeEstablishmentRepo) Create(ctx context.Context, est *db_models.Establishment) (uuid.UUID, error) {
	f.ests = append(f.ests, *est)
	return est.ID, nil
}

func (f *fakeEstablishmentRepo) Update(ctx context.Context, est *db_models.Establishment) error {
	for i := range f.ests {
		if f.ests[i].ID == est.ID {
			f.ests[i] = *est
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeEstablishmentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeEstablishmentRepo) GetByID(ctx context.Context, id string) (*db_models.Establishment, error) {
	for i := range f.ests {
		if f.ests[i].ID.String() == id {
			return &f.ests[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEstablishmentRepo) GetByOwner(ctx context.Context, ownerID string) (*db_models.Establishment, error) {
	return nil, nil
}

func (f *fakeEstablishmentRepo) List(ctx context.Context) ([]db_models.Establishment, error) {
	return f.ests, nil
}

func (f *fakeEstablishmentRepo) ListByStatus(ctx context.Context, status string) ([]db_models.Establishment, error) {
	return nil, nil
}

func (f *fakeEstablishmentRepo) SearchByText(ctx context.Context, query string) ([]db_models.Establishment, error) {
	q := strings.ToLower(query)
	var out []db_models.Establishment
	for _, est := range f.ests {
		if strings.Contains(strings.ToLower(est.Name), q) ||
			strings.Contains(strings.ToLower(est.Description), q) {
			out = append(out, est)
		}
	}
	return out, nil
}

func (f *fakeEstablishmentRepo) FindEmbedded(ctx context.Context, categoryIDs, typeIDs []uuid.UUID) ([]db_models.Establishment, error) {
	f.findEmbeddedCall++
	var out []db_models.Establishment
	for _, est := range f.ests {
		if est.Embedding == nil {
			continue
		}
		if len(categoryIDs) == 0 && len(typeIDs) == 0 {
			out = append(out, est)
			continue
		}
		if hasAnyCategory(est, categoryIDs) || hasAnyType(est, typeIDs) {
			out = append(out, est)
		}
	}
	return out, nil
}

func hasAnyCategory(est db_models.Establishment, ids []uuid.UUID) bool {
	for _, c := range est.Categories {
		for _, id := range ids {
			if c.ID == id {
				return true
			}
		}
	}
	return false
}

func hasAnyType(est db_models.Establishment, ids []uuid.UUID) bool {
	for _, t := range est.Types {
		for _, id := range ids {
			if t.ID == id {
				return true
			}
		}
	}
	return false
}

func (f *fakeEstablishmentRepo) FindMissingEmbedding(ctx context.Context) ([]db_models.Establishment, error) {
	var out []db_models.Establishment
	for _, est := range f.ests {
		if est.Embedding == nil {
			out = append(out, est)
		}
	}
	return out, nil
}

func (f *fakeEstablishmentRepo) UpdateEmbedding(ctx context.Context, id uuid.UUID, vec pgvector.Vector) error {
	f.embeddingUpdates[id] = vec
	for i := range f.ests {
		if f.ests[i].ID == id {
			v := vec
			f.ests[i].Embedding = &v
		}
	}
	return nil
}

func (f *fakeEstablishmentRepo) ClearEmbedding(ctx context.Context, id uuid.UUID) error {
	for i := range f.ests {
		if f.ests[i].ID == id {
			f.ests[i].Embedding = nil
		}
	}
	return nil
}

func (f *fakeEstablishmentRepo) ReplaceCategories(ctx context.Context, est *db_models.Establishment, categories []db_models.Category) error {
	return nil
}

func (f *fakeEstablishmentRepo) ReplaceTypes(ctx context.Context, est *db_models.Establishment, types []db_models.BusinessType) error {
	return nil
}

func (f *fakeEstablishmentRepo) AddFollower(ctx context.Context, est *db_models.Establishment, user *db_models.User) error {
	return nil
}

func (f *fakeEstablishmentRepo) RemoveFollower(ctx context.Context, est *db_models.Establishment, user *db_models.User) error {
	return nil
}

func (f *fakeEstablishmentRepo) AddLike(ctx context.Context, est *db_models.Establishment, user *db_models.User) error {
	return nil
}

func (f *fakeEstablishmentRepo) RemoveLike(ctx context.Context, est *db_models.Establishment, user *db_models.User) error {
	return nil
}

func (f *fakeEstablishmentRepo) ListFollowers(ctx context.Context, id uuid.UUID) ([]db_models.User, error) {
	return f.followers, nil
}

type fakeTaxonomyRepo struct {
	categories []db_models.Category
	types      []db_models.BusinessType
}

func (f *fakeTaxonomyRepo) CreateCategory(ctx context.Context, c *db_models.Category) error { return nil }
func (f *fakeTaxonomyRepo) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	return f.categories, nil
}
func (f *fakeTaxonomyRepo) GetCategory(ctx context.Context, id string) (*db_models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID.String() == id {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}
func (f *fakeTaxonomyRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeTaxonomyRepo) CreateType(ctx context.Context, t *db_models.BusinessType) error {
	return nil
}
func (f *fakeTaxonomyRepo) ListTypes(ctx context.Context) ([]db_models.BusinessType, error) {
	return f.types, nil
}
func (f *fakeTaxonomyRepo) GetType(ctx context.Context, id string) (*db_models.BusinessType, error) {
	for i := range f.types {
		if f.types[i].ID.String() == id {
			return &f.types[i], nil
		}
	}
	return nil, nil
}
func (f *fakeTaxonomyRepo) DeleteType(ctx context.Context, id uuid.UUID) error { return nil }

type fakeEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (f *fakeEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	f.calls++
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector(f.vec), nil
}

func (f *fakeEmbedder) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
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

func embedded(name string, vec []float32, categories ...db_models.Category) db_models.Establishment {
	v := pgvector.NewVector(vec)
	return db_models.Establishment{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		Name:       name,
		Embedding:  &v,
		Categories: categories,
	}
}

// ---------------------------------------------------------------
// pure helpers
// ---------------------------------------------------------------

func TestCosineSimilarity(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}

	assert.InDelta(t, cosineSimilarity(a, b), cosineSimilarity(b, a), 1e-9, "must be symmetric")
	assert.InDelta(t, 1.0, cosineSimilarity(a, a), 1e-9, "self similarity must be 1")
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	zero := []float32{0, 0, 0}
	a := []float32{1, 2, 3}

	assert.Equal(t, 0.0, cosineSimilarity(zero, a))
	assert.Equal(t, 0.0, cosineSimilarity(a, zero))
	assert.Equal(t, 0.0, cosineSimilarity(zero, zero))
}

func TestCosineSimilarityLengthMismatch(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
}

func TestDetectFilters(t *testing.T) {
	postres := db_models.Category{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Postres"}
	comida := db_models.Category{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Comida"}
	bar := db_models.BusinessType{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Bar"}

	categories := []db_models.Category{postres, comida}
	types := []db_models.BusinessType{bar}

	catIDs, typeIDs := detectFilters("quiero POSTRES cerca de un bar", categories, types)
	assert.Equal(t, []uuid.UUID{postres.ID}, catIDs)
	assert.Equal(t, []uuid.UUID{bar.ID}, typeIDs)

	catIDs, typeIDs = detectFilters("ferreteria", categories, types)
	assert.Empty(t, catIDs)
	assert.Empty(t, typeIDs)
}

func TestDetectFiltersRegexCharactersAreLiteral(t *testing.T) {
	weird := db_models.Category{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "a(b"}
	categories := []db_models.Category{weird}

	catIDs, _ := detectFilters("busco a(b por aqui", categories, nil)
	assert.Equal(t, []uuid.UUID{weird.ID}, catIDs)

	catIDs, _ = detectFilters("busco ab por aqui", categories, nil)
	assert.Empty(t, catIDs)
}

func TestConfidenceTier(t *testing.T) {
	tests := []struct {
		score      float64
		confidence string
		limit      int
	}{
		{0.9, response_models.ConfidenceHigh, 6},
		{0.51, response_models.ConfidenceHigh, 6},
		{0.5, response_models.ConfidenceMedium, 8},
		{0.36, response_models.ConfidenceMedium, 8},
		{0.35, response_models.ConfidenceLow, 10},
		{0.0, response_models.ConfidenceLow, 10},
	}
	for _, tt := range tests {
		confidence, limit := confidenceTier(tt.score)
		assert.Equal(t, tt.confidence, confidence, "score %v", tt.score)
		assert.Equal(t, tt.limit, limit, "score %v", tt.score)
	}
}

func TestRerankByIntent(t *testing.T) {
	ferreteria := embedded("Tornillos SA", []float32{1, 0}, db_models.Category{Name: "Ferretería"})
	dulceria := embedded("Dulce Hogar", []float32{1, 0}, db_models.Category{Name: "Postres y dulces"})

	scored := []scoredEstablishment{
		{est: &ferreteria, score: 0.6},
		{est: &dulceria, score: 0.6},
	}
	rerankByIntent(scored, detectIntents("quiero un postre"))

	assert.Equal(t, "Dulce Hogar", scored[0].est.Name)
	assert.Equal(t, "Tornillos SA", scored[1].est.Name)
}

func TestRerankByIntentNoIntentKeepsOrder(t *testing.T) {
	first := embedded("Uno", []float32{1, 0})
	second := embedded("Dos", []float32{1, 0})

	scored := []scoredEstablishment{
		{est: &first, score: 0.6},
		{est: &second, score: 0.5},
	}
	rerankByIntent(scored, detectIntents("algo sin familia"))

	assert.Equal(t, "Uno", scored[0].est.Name)
	assert.Equal(t, "Dos", scored[1].est.Name)
}

// ---------------------------------------------------------------
// ProcessMessage
// ---------------------------------------------------------------

func TestProcessMessageEmptyQuery(t *testing.T) {
	svc := NewChatService(newFakeEstablishmentRepo(), &fakeTaxonomyRepo{}, &fakeEmbedder{})

	_, err := svc.ProcessMessage(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrEmptyMessage)
}

func TestProcessMessageSemanticRanking(t *testing.T) {
	// Unit query vector (1,0) against unit candidates gives cosines of
	// exactly the first component: 0.6, 0.4, 0.1.
	a := embedded("Alta", []float32{0.6, 0.8})
	b := embedded("Media", []float32{0.4, 0.9165151})
	c := embedded("Baja", []float32{0.1, 0.99498743})

	repo := newFakeEstablishmentRepo(c, a, b)
	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	svc := NewChatService(repo, &fakeTaxonomyRepo{}, embedder)

	resp, err := svc.ProcessMessage(context.Background(), "algo rico")
	require.NoError(t, err)

	assert.Equal(t, response_models.MethodSemantic, resp.Method)
	assert.Equal(t, response_models.ConfidenceHigh, resp.Confidence)
	assert.Equal(t, 3, resp.Found)
	assert.InDelta(t, 0.6, resp.TopScore, 1e-6)

	require.Len(t, resp.Results, 3)
	assert.Equal(t, "Alta", resp.Results[0].Name)
	assert.Equal(t, "Media", resp.Results[1].Name)
	assert.Equal(t, "Baja", resp.Results[2].Name)
	assert.GreaterOrEqual(t, resp.Results[0].Score, resp.Results[1].Score)
	assert.GreaterOrEqual(t, resp.Results[1].Score, resp.Results[2].Score)
}

func TestProcessMessageTopScoreSurvivesIntentRerank(t *testing.T) {
	ferreteria := embedded("Tornillos SA", []float32{0.6, 0.8}, db_models.Category{Name: "Ferretería"})
	dulceria := embedded("Dulce Hogar", []float32{0.4, 0.9165151}, db_models.Category{Name: "Postres"})

	repo := newFakeEstablishmentRepo(ferreteria, dulceria)
	svc := NewChatService(repo, &fakeTaxonomyRepo{}, &fakeEmbedder{vec: []float32{1, 0}})

	// "dulce" pulls the 0.4 match to the front, but the tier and the
	// reported score still come from the 0.6 best match.
	resp, err := svc.ProcessMessage(context.Background(), "quiero algo dulce")
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Dulce Hogar", resp.Results[0].Name)
	assert.InDelta(t, 0.6, resp.TopScore, 1e-6)
	assert.Equal(t, response_models.ConfidenceHigh, resp.Confidence)
}

func TestProcessMessageFilteredThenUnfilteredRetry(t *testing.T) {
	postres := db_models.Category{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Postres"}
	other := embedded("Cevichería", []float32{1, 0}, db_models.Category{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Comida marina"})

	repo := newFakeEstablishmentRepo(other)
	taxonomy := &fakeTaxonomyRepo{categories: []db_models.Category{postres}}
	svc := NewChatService(repo, taxonomy, &fakeEmbedder{vec: []float32{1, 0}})

	// The query mentions "postres" but nothing embedded carries that
	// category, so the filter is dropped and all candidates are used.
	resp, err := svc.ProcessMessage(context.Background(), "postres por favor")
	require.NoError(t, err)

	assert.Equal(t, response_models.MethodSemantic, resp.Method)
	assert.Equal(t, 2, repo.findEmbeddedCall)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Cevichería", resp.Results[0].Name)
}

func TestProcessMessageTextFallback(t *testing.T) {
	plain := db_models.Establishment{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Pizza Bros",
	}
	repo := newFakeEstablishmentRepo(plain)
	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	svc := NewChatService(repo, &fakeTaxonomyRepo{}, embedder)

	resp, err := svc.ProcessMessage(context.Background(), "pizza")
	require.NoError(t, err)

	assert.Equal(t, response_models.MethodText, resp.Method)
	assert.Equal(t, 0, embedder.calls, "text fallback must not embed the query")
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Pizza Bros", resp.Results[0].Name)
	assert.Equal(t, 0.0, resp.Results[0].Score)
}

func TestProcessMessageNoMatchesAtAll(t *testing.T) {
	repo := newFakeEstablishmentRepo()
	svc := NewChatService(repo, &fakeTaxonomyRepo{}, &fakeEmbedder{vec: []float32{1, 0}})

	resp, err := svc.ProcessMessage(context.Background(), "algo inexistente")
	require.NoError(t, err)

	assert.Equal(t, response_models.MethodNone, resp.Method)
	assert.Equal(t, 0, resp.Found)
	assert.Empty(t, resp.Results)
	assert.NotEmpty(t, resp.Reply)
}

func TestProcessMessageEmbedderDown(t *testing.T) {
	est := embedded("Cualquiera", []float32{1, 0})
	repo := newFakeEstablishmentRepo(est)
	svc := NewChatService(repo, &fakeTaxonomyRepo{}, &fakeEmbedder{err: errors.New("boom")})

	_, err := svc.ProcessMessage(context.Background(), "hola")
	assert.ErrorIs(t, err, utils.ErrEmbeddingUnavailable)
}

func TestProcessMessageZeroNormEmbeddingScoresZero(t *testing.T) {
	degenerate := embedded("Sin norma", []float32{0, 0})
	repo := newFakeEstablishmentRepo(degenerate)
	svc := NewChatService(repo, &fakeTaxonomyRepo{}, &fakeEmbedder{vec: []float32{1, 0}})

	resp, err := svc.ProcessMessage(context.Background(), "hola")
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, 0.0, resp.Results[0].Score)
	assert.Equal(t, response_models.ConfidenceLow, resp.Confidence)
}
