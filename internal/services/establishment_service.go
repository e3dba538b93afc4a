package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/internal/models/response_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type EstablishmentService interface {
	Create(ctx context.Context, ownerID string, req request_models.CreateEstablishmentRequest) (*response_models.EstablishmentResponse, error)
	Update(ctx context.Context, callerID, callerRole, id string, req request_models.UpdateEstablishmentRequest) (*response_models.EstablishmentResponse, error)
	Delete(ctx context.Context, callerID, callerRole, id string) error

	Get(ctx context.Context, id string) (*response_models.EstablishmentResponse, error)
	GetMine(ctx context.Context, ownerID string) (*response_models.EstablishmentResponse, error)
	List(ctx context.Context) ([]response_models.EstablishmentResponse, error)
	ListByStatus(ctx context.Context, status string) ([]response_models.EstablishmentResponse, error)
	Search(ctx context.Context, query string) ([]response_models.EstablishmentResponse, error)

	ChangeStatus(ctx context.Context, id string, status string) error
	ChangeVerified(ctx context.Context, id string, verified bool) error

	Follow(ctx context.Context, userID, id string) error
	Unfollow(ctx context.Context, userID, id string) error
	Like(ctx context.Context, userID, id string) error
	Unlike(ctx context.Context, userID, id string) error

	UploadImages(c *gin.Context, callerID, callerRole, id string, kind string, files []*multipart.FileHeader) (*response_models.EstablishmentResponse, error)
	RemoveImage(ctx context.Context, callerID, callerRole, id string, name string) error
	ReorderImages(ctx context.Context, callerID, callerRole, id string, order []string) error
}

const (
	ImageKindMain    = "imagen"
	ImageKindCover   = "portada"
	ImageKindGallery = "galeria"
)

type establishmentService struct {
	establishments repositories.EstablishmentRepository
	taxonomy       repositories.TaxonomyRepository
	users          repositories.UserRepository
	notifications  repositories.NotificationRepository
	uploads        *utils.UploadStore
}

func NewEstablishmentService(
	establishments repositories.EstablishmentRepository,
	taxonomy repositories.TaxonomyRepository,
	users repositories.UserRepository,
	notifications repositories.NotificationRepository,
	uploads *utils.UploadStore,
) EstablishmentService {
	return &establishmentService{
		establishments: establishments,
		taxonomy:       taxonomy,
		users:          users,
		notifications:  notifications,
		uploads:        uploads,
	}
}

func toEstablishmentResponse(est *db_models.Establishment) *response_models.EstablishmentResponse {
	out := &response_models.EstablishmentResponse{
		ID:          est.ID.String(),
		Name:        est.Name,
		Description: est.Description,
		OwnerID:     est.OwnerID.String(),
		Phone:       est.Phone,
		Image:       est.Image,
		Cover:       est.Cover,
		Images:      est.Images,
		Status:      est.Status,
		Verified:    est.Verified,
		VerifiedAt:  est.VerifiedAt,
		Social: response_models.SocialLinksResponse{
			Facebook:  est.Facebook,
			Instagram: est.Instagram,
			Twitter:   est.Twitter,
			Youtube:   est.Youtube,
			Tiktok:    est.Tiktok,
		},
		FollowerCount: len(est.Followers),
		LikeCount:     len(est.Likes),
	}
	for _, c := range est.Categories {
		out.Categories = append(out.Categories, c.Name)
	}
	for _, t := range est.Types {
		out.Types = append(out.Types, t.Name)
	}
	for _, l := range est.Locations {
		out.Locations = append(out.Locations, response_models.LocationResponse{
			ID:         l.ID.String(),
			Address:    l.Address,
			City:       l.City,
			District:   l.District,
			PostalCode: l.PostalCode,
			Latitude:   l.Latitude,
			Longitude:  l.Longitude,
			Reference:  l.Reference,
		})
	}
	for _, s := range est.Schedules {
		out.Schedules = append(out.Schedules, response_models.ScheduleResponse{
			ID:     s.ID.String(),
			Day:    s.Day,
			Opens:  s.Opens,
			Closes: s.Closes,
		})
	}

	var ratingSum, rated int
	for _, c := range est.Comments {
		out.Comments = append(out.Comments, response_models.CommentResponse{
			ID:       c.ID.String(),
			Username: c.User.Username,
			Text:     c.Text,
			Rating:   c.Rating,
		})
		if c.Rating > 0 {
			ratingSum += c.Rating
			rated++
		}
	}
	out.ReviewCount = rated
	if rated > 0 {
		out.AverageRating = float64(ratingSum) / float64(rated)
	}
	return out
}

func (s *establishmentService) resolveTaxonomy(ctx context.Context, categoryIDs, typeIDs []string) ([]db_models.Category, []db_models.BusinessType, error) {
	categories := make([]db_models.Category, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		category, err := s.taxonomy.GetCategory(ctx, id)
		if err != nil {
			return nil, nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, nil, utils.ErrCategoryNotFound
		}
		categories = append(categories, *category)
	}
	types := make([]db_models.BusinessType, 0, len(typeIDs))
	for _, id := range typeIDs {
		bt, err := s.taxonomy.GetType(ctx, id)
		if err != nil {
			return nil, nil, utils.ErrDatabaseError
		}
		if bt == nil {
			return nil, nil, utils.ErrTypeNotFound
		}
		types = append(types, *bt)
	}
	return categories, types, nil
}

func (s *establishmentService) Create(ctx context.Context, ownerID string, req request_models.CreateEstablishmentRequest) (*response_models.EstablishmentResponse, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	categories, types, err := s.resolveTaxonomy(ctx, req.CategoryIDs, req.TypeIDs)
	if err != nil {
		return nil, err
	}

	est := &db_models.Establishment{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     owner,
		Phone:       req.Phone,
		Status:      db_models.StatusPending,
		Facebook:    req.Social.Facebook,
		Instagram:   req.Social.Instagram,
		Twitter:     req.Social.Twitter,
		Youtube:     req.Social.Youtube,
		Tiktok:      req.Social.Tiktok,
		Categories:  categories,
		Types:       types,
	}
	for _, l := range req.Locations {
		est.Locations = append(est.Locations, db_models.Location{
			Address:    l.Address,
			City:       l.City,
			District:   l.District,
			PostalCode: l.PostalCode,
			Latitude:   l.Latitude,
			Longitude:  l.Longitude,
			Reference:  l.Reference,
		})
	}
	for _, h := range req.Schedules {
		est.Schedules = append(est.Schedules, db_models.Schedule{
			Day:    h.Day,
			Opens:  h.Opens,
			Closes: h.Closes,
		})
	}

	if _, err := s.establishments.Create(ctx, est); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEstablishmentResponse(est), nil
}

func (s *establishmentService) authorize(est *db_models.Establishment, callerID, callerRole string) error {
	if callerRole == db_models.RoleAdmin {
		return nil
	}
	if est.OwnerID.String() != callerID {
		return utils.ErrNotOwner
	}
	return nil
}

func (s *establishmentService) fetch(ctx context.Context, id string) (*db_models.Establishment, error) {
	est, err := s.establishments.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if est == nil {
		return nil, utils.ErrEstablishmentNotFound
	}
	return est, nil
}

func (s *establishmentService) Update(ctx context.Context, callerID, callerRole, id string, req request_models.UpdateEstablishmentRequest) (*response_models.EstablishmentResponse, error) {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(est, callerID, callerRole); err != nil {
		return nil, err
	}

	// The embedding is derived from name, description, categories and
	// types. Any change to those invalidates it until the next reindex.
	textChanged := false
	if req.Name != nil && *req.Name != est.Name {
		est.Name = *req.Name
		textChanged = true
	}
	if req.Description != nil && *req.Description != est.Description {
		est.Description = *req.Description
		textChanged = true
	}
	if req.Phone != nil {
		est.Phone = *req.Phone
	}
	if req.Social != nil {
		est.Facebook = req.Social.Facebook
		est.Instagram = req.Social.Instagram
		est.Twitter = req.Social.Twitter
		est.Youtube = req.Social.Youtube
		est.Tiktok = req.Social.Tiktok
	}

	if req.CategoryIDs != nil || req.TypeIDs != nil {
		categories, types, err := s.resolveTaxonomy(ctx, req.CategoryIDs, req.TypeIDs)
		if err != nil {
			return nil, err
		}
		if req.CategoryIDs != nil {
			if err := s.establishments.ReplaceCategories(ctx, est, categories); err != nil {
				return nil, utils.ErrDatabaseError
			}
			est.Categories = categories
			textChanged = true
		}
		if req.TypeIDs != nil {
			if err := s.establishments.ReplaceTypes(ctx, est, types); err != nil {
				return nil, utils.ErrDatabaseError
			}
			est.Types = types
			textChanged = true
		}
	}

	if textChanged {
		est.Embedding = nil
	}
	if err := s.establishments.Update(ctx, est); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if textChanged {
		if err := s.establishments.ClearEmbedding(ctx, est.ID); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return toEstablishmentResponse(est), nil
}

func (s *establishmentService) Delete(ctx context.Context, callerID, callerRole, id string) error {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(est, callerID, callerRole); err != nil {
		return err
	}
	if err := s.establishments.Delete(ctx, est.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *establishmentService) Get(ctx context.Context, id string) (*response_models.EstablishmentResponse, error) {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEstablishmentResponse(est), nil
}

func (s *establishmentService) GetMine(ctx context.Context, ownerID string) (*response_models.EstablishmentResponse, error) {
	est, err := s.establishments.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if est == nil {
		return nil, utils.ErrEstablishmentNotFound
	}
	return toEstablishmentResponse(est), nil
}

func (s *establishmentService) List(ctx context.Context) ([]response_models.EstablishmentResponse, error) {
	ests, err := s.establishments.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEstablishmentResponses(ests), nil
}

func (s *establishmentService) ListByStatus(ctx context.Context, status string) ([]response_models.EstablishmentResponse, error) {
	if !validStatus(status) {
		return nil, utils.ErrInvalidStatus
	}
	ests, err := s.establishments.ListByStatus(ctx, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEstablishmentResponses(ests), nil
}

func (s *establishmentService) Search(ctx context.Context, query string) ([]response_models.EstablishmentResponse, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	ests, err := s.establishments.SearchByText(ctx, query)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEstablishmentResponses(ests), nil
}

func toEstablishmentResponses(ests []db_models.Establishment) []response_models.EstablishmentResponse {
	out := make([]response_models.EstablishmentResponse, 0, len(ests))
	for i := range ests {
		out = append(out, *toEstablishmentResponse(&ests[i]))
	}
	return out
}

func validStatus(status string) bool {
	switch status {
	case db_models.StatusPending, db_models.StatusApproved, db_models.StatusRejected:
		return true
	}
	return false
}

func (s *establishmentService) ChangeStatus(ctx context.Context, id string, status string) error {
	if !validStatus(status) {
		return utils.ErrInvalidStatus
	}
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	est.Status = status
	if err := s.establishments.Update(ctx, est); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *establishmentService) ChangeVerified(ctx context.Context, id string, verified bool) error {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	est.Verified = verified
	if verified {
		now := time.Now()
		est.VerifiedAt = &now
	} else {
		est.VerifiedAt = nil
	}
	if err := s.establishments.Update(ctx, est); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *establishmentService) fetchUser(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *establishmentService) Follow(ctx context.Context, userID, id string) error {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.establishments.AddFollower(ctx, est, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *establishmentService) Unfollow(ctx context.Context, userID, id string) error {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.establishments.RemoveFollower(ctx, est, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *establishmentService) Like(ctx context.Context, userID, id string) error {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.establishments.AddLike(ctx, est, user); err != nil {
		return utils.ErrDatabaseError
	}

	if est.OwnerID != user.ID {
		notification := &db_models.Notification{
			UserID:  est.OwnerID,
			Message: "A " + user.Username + " le gusta " + est.Name,
			Kind:    db_models.NotificationLike,
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}

func (s *establishmentService) Unlike(ctx context.Context, userID, id string) error {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.establishments.RemoveLike(ctx, est, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *establishmentService) UploadImages(c *gin.Context, callerID, callerRole, id string, kind string, files []*multipart.FileHeader) (*response_models.EstablishmentResponse, error) {
	ctx := c.Request.Context()
	est, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(est, callerID, callerRole); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, utils.ErrInvalidInput
	}

	switch kind {
	case ImageKindMain:
		name, err := s.uploads.Save(c, files[0])
		if err != nil {
			return nil, err
		}
		if est.Image != "" {
			_ = s.uploads.Remove(est.Image)
		}
		est.Image = name
	case ImageKindCover:
		name, err := s.uploads.Save(c, files[0])
		if err != nil {
			return nil, err
		}
		if est.Cover != "" {
			_ = s.uploads.Remove(est.Cover)
		}
		est.Cover = name
	case ImageKindGallery:
		for _, file := range files {
			name, err := s.uploads.Save(c, file)
			if err != nil {
				return nil, err
			}
			est.Images = append(est.Images, name)
		}
	default:
		return nil, utils.ErrInvalidInput
	}

	if err := s.establishments.Update(ctx, est); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEstablishmentResponse(est), nil
}

func (s *establishmentService) RemoveImage(ctx context.Context, callerID, callerRole, id string, name string) error {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(est, callerID, callerRole); err != nil {
		return err
	}

	idx := -1
	for i, img := range est.Images {
		if img == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return utils.ErrImageMismatch
	}
	est.Images = append(est.Images[:idx], est.Images[idx+1:]...)

	if err := s.establishments.Update(ctx, est); err != nil {
		return utils.ErrDatabaseError
	}
	_ = s.uploads.Remove(name)
	return nil
}

// ReorderImages accepts a permutation of the existing gallery.
func (s *establishmentService) ReorderImages(ctx context.Context, callerID, callerRole, id string, order []string) error {
	est, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(est, callerID, callerRole); err != nil {
		return err
	}

	if len(order) != len(est.Images) {
		return utils.ErrImageMismatch
	}
	existing := make(map[string]int, len(est.Images))
	for _, img := range est.Images {
		existing[img]++
	}
	for _, img := range order {
		if existing[img] == 0 {
			return utils.ErrImageMismatch
		}
		existing[img]--
	}

	est.Images = order
	if err := s.establishments.Update(ctx, est); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
