package services

import (
	"fmt"
	"strings"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/response_models"
)

// Placeholders shown when a listing is missing a field.
const (
	noDescription = "Sin descripción"
	noCategory    = "Sin categoría"
	noType        = "Sin tipo"
	noAddress     = "Dirección no disponible"
	noPhone       = "Teléfono no disponible"
	noHours       = "Horario no disponible"
)

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func toDisplayRecord(est *db_models.Establishment, score float64) response_models.DisplayRecord {
	rec := response_models.DisplayRecord{
		ID:           est.ID.String(),
		Name:         est.Name,
		Description:  noDescription,
		Address:      noAddress,
		Phone:        noPhone,
		Hours:        noHours,
		Images:       est.Images,
		LikeCount:    len(est.Likes),
		CommentCount: len(est.Comments),
		Verified:     est.Verified,
		Score:        score,
	}
	if est.Description != "" {
		rec.Description = est.Description
	}
	if est.Phone != "" {
		rec.Phone = est.Phone
	}

	var categories, types []string
	for _, c := range est.Categories {
		categories = append(categories, c.Name)
	}
	for _, t := range est.Types {
		types = append(types, t.Name)
	}
	rec.Categories = joinOr(categories, noCategory)
	rec.Types = joinOr(types, noType)

	if len(est.Locations) > 0 {
		rec.Address = est.Locations[0].Address
	}
	if len(est.Schedules) > 0 {
		first := est.Schedules[0]
		rec.Hours = first.Opens + " - " + first.Closes
	}

	// Main image falls back to the cover, then the first gallery shot.
	switch {
	case est.Image != "":
		rec.Image = &est.Image
	case est.Cover != "":
		rec.Image = &est.Cover
	case len(est.Images) > 0:
		rec.Image = &est.Images[0]
	}

	socials := []struct{ label, value string }{
		{"Facebook", est.Facebook},
		{"Instagram", est.Instagram},
		{"Twitter", est.Twitter},
		{"Youtube", est.Youtube},
		{"Tiktok", est.Tiktok},
	}
	for _, s := range socials {
		if s.value != "" {
			rec.SocialLinks = append(rec.SocialLinks, s.label+": "+s.value)
		}
	}
	return rec
}

// composeReply renders the conversational answer: a detailed block for
// the best match and a short numbered list for the runners-up.
func composeReply(records []response_models.DisplayRecord, confidence string) string {
	if len(records) == 0 {
		return "Lo siento, no encontré establecimientos que coincidan con tu búsqueda. Intenta con otras palabras."
	}

	var b strings.Builder
	switch confidence {
	case response_models.ConfidenceHigh:
		b.WriteString("¡Encontré esto para ti!\n\n")
	case response_models.ConfidenceMedium:
		b.WriteString("No estoy del todo seguro, pero esto podría interesarte:\n\n")
	default:
		b.WriteString("No encontré una coincidencia clara, pero quizá alguno de estos te sirva:\n\n")
	}

	top := records[0]
	fmt.Fprintf(&b, "⭐ %s\n", top.Name)
	fmt.Fprintf(&b, "%s\n", top.Description)
	fmt.Fprintf(&b, "Categoría: %s | Tipo: %s\n", top.Categories, top.Types)
	fmt.Fprintf(&b, "📍 %s\n", top.Address)
	fmt.Fprintf(&b, "📞 %s\n", top.Phone)
	fmt.Fprintf(&b, "🕒 %s\n", top.Hours)

	if len(records) > 1 {
		b.WriteString("\nTambién podrían interesarte:\n")
		rest := records[1:]
		if len(rest) > 5 {
			rest = rest[:5]
		}
		for i, rec := range rest {
			fmt.Fprintf(&b, "%d. %s — %s — %s\n", i+1, rec.Name, rec.Categories, rec.Address)
		}
	}
	return b.String()
}
