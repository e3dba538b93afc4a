package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/response_models"
)

func TestToDisplayRecordPlaceholders(t *testing.T) {
	bare := db_models.Establishment{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Solo Nombre",
	}

	rec := toDisplayRecord(&bare, 0)

	assert.Equal(t, "Solo Nombre", rec.Name)
	assert.Equal(t, noDescription, rec.Description)
	assert.Equal(t, noCategory, rec.Categories)
	assert.Equal(t, noType, rec.Types)
	assert.Equal(t, noAddress, rec.Address)
	assert.Equal(t, noPhone, rec.Phone)
	assert.Equal(t, noHours, rec.Hours)
	assert.Nil(t, rec.Image)
	assert.Empty(t, rec.SocialLinks)
}

func TestToDisplayRecordFullListing(t *testing.T) {
	est := db_models.Establishment{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Name:        "La Esquina",
		Description: "Comida criolla",
		Phone:       "999888777",
		Verified:    true,
		Facebook:    "laesquina",
		Tiktok:      "@laesquina",
		Categories:  []db_models.Category{{Name: "Comida"}, {Name: "Criolla"}},
		Types:       []db_models.BusinessType{{Name: "Restaurante"}},
		Locations:   []db_models.Location{{Address: "Av. Principal 123"}},
		Schedules:   []db_models.Schedule{{Day: "lunes", Opens: "09:00", Closes: "18:00"}},
		Comments:    []db_models.Comment{{Rating: 5}, {Rating: 4}},
		Likes:       []db_models.User{{}, {}, {}},
	}

	rec := toDisplayRecord(&est, 0.42)

	assert.Equal(t, "Comida, Criolla", rec.Categories)
	assert.Equal(t, "Restaurante", rec.Types)
	assert.Equal(t, "Av. Principal 123", rec.Address)
	assert.Equal(t, "09:00 - 18:00", rec.Hours)
	assert.Equal(t, 3, rec.LikeCount)
	assert.Equal(t, 2, rec.CommentCount)
	assert.True(t, rec.Verified)
	assert.InDelta(t, 0.42, rec.Score, 1e-9)
	assert.Equal(t, []string{"Facebook: laesquina", "Tiktok: @laesquina"}, rec.SocialLinks)
}

func TestToDisplayRecordImagePrecedence(t *testing.T) {
	est := db_models.Establishment{Name: "X", Image: "main.jpg", Cover: "cover.jpg", Images: []string{"g1.jpg"}}
	rec := toDisplayRecord(&est, 0)
	require.NotNil(t, rec.Image)
	assert.Equal(t, "main.jpg", *rec.Image)

	est.Image = ""
	rec = toDisplayRecord(&est, 0)
	require.NotNil(t, rec.Image)
	assert.Equal(t, "cover.jpg", *rec.Image)

	est.Cover = ""
	rec = toDisplayRecord(&est, 0)
	require.NotNil(t, rec.Image)
	assert.Equal(t, "g1.jpg", *rec.Image)
}

func TestComposeReplyEmpty(t *testing.T) {
	reply := composeReply(nil, response_models.ConfidenceNone)
	assert.Contains(t, reply, "no encontré establecimientos")
}

func TestComposeReplySingleResult(t *testing.T) {
	records := []response_models.DisplayRecord{{
		Name:        "La Esquina",
		Description: "Comida criolla",
		Categories:  "Comida",
		Types:       "Restaurante",
		Address:     "Av. Principal 123",
		Phone:       "999888777",
		Hours:       "09:00 - 18:00",
	}}

	reply := composeReply(records, response_models.ConfidenceHigh)

	assert.Contains(t, reply, "La Esquina")
	assert.Contains(t, reply, "Av. Principal 123")
	assert.NotContains(t, reply, "También podrían interesarte")
}

func TestComposeReplyHedgesByConfidence(t *testing.T) {
	records := []response_models.DisplayRecord{{Name: "X"}}

	high := composeReply(records, response_models.ConfidenceHigh)
	medium := composeReply(records, response_models.ConfidenceMedium)
	low := composeReply(records, response_models.ConfidenceLow)

	assert.True(t, strings.HasPrefix(high, "¡Encontré"))
	assert.True(t, strings.HasPrefix(medium, "No estoy del todo seguro"))
	assert.True(t, strings.HasPrefix(low, "No encontré una coincidencia clara"))
}

func TestComposeReplyTailCappedAtFive(t *testing.T) {
	records := make([]response_models.DisplayRecord, 8)
	for i := range records {
		records[i] = response_models.DisplayRecord{Name: "Lugar", Categories: "Cat", Address: "Dir"}
	}

	reply := composeReply(records, response_models.ConfidenceHigh)

	assert.Contains(t, reply, "5. ")
	assert.NotContains(t, reply, "6. ")
}
