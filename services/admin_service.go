package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/cache"
	"github.com/lezzetkesif/lezzetkesif/pkg/editor"
	"github.com/lezzetkesif/lezzetkesif/repository"
	"github.com/lezzetkesif/lezzetkesif/ws"
)

// AdminService, yönetim paneli işlemleri: yetki kontrolü, restoran/blog
// kayıtları, değerlendirme moderasyonu ve iki aşamalı silme.
//
// Çakışan admin düzenlemelerinde son yazan kazanır.
type AdminService interface {
	// IsAdmin, kullanıcının admins tablosunda olup olmadığını döner.
	// Sorgu hatası loglanır ve "admin değil" sayılır.
	IsAdmin(ctx context.Context, userID string) bool

	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	CreateRestaurant(ctx context.Context, actorID string, req *models.CreateRestaurantRequest) (*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, actorID, id string, req *models.UpdateRestaurantRequest) (*models.Restaurant, error)

	// ListBlogPosts, taslaklar dahil tüm yazılar.
	ListBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	CreateBlogPost(ctx context.Context, actorID string, req *models.CreateBlogPostRequest) (*models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, actorID, id string, req *models.UpdateBlogPostRequest) (*models.BlogPost, error)

	// ListReviews, status "" veya "all" ise tüm değerlendirmeler.
	ListReviews(ctx context.Context, status string) ([]models.Review, error)
	UpdateReviewStatus(ctx context.Context, id string, req *models.UpdateReviewStatusRequest) (*models.Review, error)

	// Editor: form ve silme onayı durumu, (admin, tablo) başına.
	EditorState(actorID string, kind models.EntityKind) (editor.Snapshot, error)
	OpenEditor(ctx context.Context, actorID string, kind models.EntityKind, target string) (editor.Snapshot, error)
	CloseEditor(actorID string, kind models.EntityKind) (editor.Snapshot, error)
	RequestDelete(ctx context.Context, actorID string, kind models.EntityKind, id string) (editor.Snapshot, error)
	// ConfirmDelete, onay bekleyen kaydı siler ve id'sini döner.
	// Bekleyen istek yoksa ErrBadRequest.
	ConfirmDelete(ctx context.Context, actorID string, kind models.EntityKind) (string, error)
	CancelDelete(actorID string, kind models.EntityKind) (editor.Snapshot, error)
}

type adminService struct {
	adminRepo      repository.AdminRepository
	restaurantRepo repository.RestaurantRepository
	blogRepo       repository.BlogPostRepository
	reviewRepo     repository.ReviewRepository
	commentRepo    repository.CommentRepository
	favoriteRepo   repository.FavoriteRepository
	hub            ws.EventPublisher
	editors        *editor.Registry
	adminCache     *cache.TTLCache[string, bool] // nil ise cache yok
	log            *zap.Logger
}

// NewAdminService, constructor. adminCache nil olabilir.
func NewAdminService(
	adminRepo repository.AdminRepository,
	restaurantRepo repository.RestaurantRepository,
	blogRepo repository.BlogPostRepository,
	reviewRepo repository.ReviewRepository,
	commentRepo repository.CommentRepository,
	favoriteRepo repository.FavoriteRepository,
	hub ws.EventPublisher,
	adminCache *cache.TTLCache[string, bool],
	logger *zap.Logger,
) AdminService {
	return &adminService{
		adminRepo:      adminRepo,
		restaurantRepo: restaurantRepo,
		blogRepo:       blogRepo,
		reviewRepo:     reviewRepo,
		commentRepo:    commentRepo,
		favoriteRepo:   favoriteRepo,
		hub:            hub,
		editors:        editor.NewRegistry(),
		adminCache:     adminCache,
		log:            logger.Named("admin"),
	}
}

func (s *adminService) IsAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}
	if s.adminCache != nil {
		if v, ok := s.adminCache.Get(userID); ok {
			return v
		}
	}

	ok, err := s.adminRepo.Exists(ctx, userID)
	if err != nil {
		// Fail-closed: hata cache'lenmez, bir sonraki istek tekrar sorar.
		s.log.Error("admin check failed", zap.String("user_id", userID), zap.Error(err))
		return false
	}

	if s.adminCache != nil {
		s.adminCache.Set(userID, ok)
	}
	return ok
}

// ─── Restaurants ───

func (s *adminService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurantRepo.GetAll(ctx)
}

func (s *adminService) CreateRestaurant(ctx context.Context, actorID string, req *models.CreateRestaurantRequest) (*models.Restaurant, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	rest := req.Build()
	if err := s.restaurantRepo.Create(ctx, rest); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	s.closeAfterSave(actorID, models.KindRestaurants)
	publish(s.hub, ws.OpRestaurantCreate, rest)
	return rest, nil
}

func (s *adminService) UpdateRestaurant(ctx context.Context, actorID, id string, req *models.UpdateRestaurantRequest) (*models.Restaurant, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	rest, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(rest)
	if err := s.restaurantRepo.Update(ctx, rest); err != nil {
		return nil, err
	}

	s.closeAfterSave(actorID, models.KindRestaurants)
	publish(s.hub, ws.OpRestaurantUpdate, rest)
	return rest, nil
}

// ─── Blog ───

func (s *adminService) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return s.blogRepo.GetAll(ctx)
}

func (s *adminService) CreateBlogPost(ctx context.Context, actorID string, req *models.CreateBlogPostRequest) (*models.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post := req.Build(actorID)
	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	s.closeAfterSave(actorID, models.KindBlog)
	publish(s.hub, ws.OpBlogPostCreate, post)
	return post, nil
}

func (s *adminService) UpdateBlogPost(ctx context.Context, actorID, id string, req *models.UpdateBlogPostRequest) (*models.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(post)
	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.closeAfterSave(actorID, models.KindBlog)
	publish(s.hub, ws.OpBlogPostUpdate, post)
	return post, nil
}

// ─── Reviews ───

func (s *adminService) ListReviews(ctx context.Context, status string) ([]models.Review, error) {
	if status == "" || status == "all" {
		return s.reviewRepo.List(ctx, "")
	}
	st := models.ReviewStatus(status)
	if !st.Valid() {
		return nil, fmt.Errorf("%w: status must be one of all, pending, approved, rejected", pkg.ErrBadRequest)
	}
	return s.reviewRepo.List(ctx, st)
}

func (s *adminService) UpdateReviewStatus(ctx context.Context, id string, req *models.UpdateReviewStatusRequest) (*models.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	if err := s.reviewRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(s.hub, ws.OpReviewUpdate, review)
	return review, nil
}

// ─── Editor ───

func (s *adminService) EditorState(actorID string, kind models.EntityKind) (editor.Snapshot, error) {
	if !kind.Valid() {
		return editor.Snapshot{}, errUnknownKind(kind)
	}
	return s.editors.Snapshot(actorID, string(kind)), nil
}

// OpenEditor, target boşsa oluşturma formunu, doluysa kaydın düzenleme formunu açar.
func (s *adminService) OpenEditor(ctx context.Context, actorID string, kind models.EntityKind, target string) (editor.Snapshot, error) {
	if !kind.Valid() {
		return editor.Snapshot{}, errUnknownKind(kind)
	}
	if target != "" {
		if err := s.exists(ctx, kind, target); err != nil {
			return editor.Snapshot{}, err
		}
	}

	return s.transition(actorID, kind, func(e *editor.Editor) error {
		if target == "" {
			return e.OpenCreate()
		}
		return e.OpenEdit(target)
	})
}

func (s *adminService) CloseEditor(actorID string, kind models.EntityKind) (editor.Snapshot, error) {
	if !kind.Valid() {
		return editor.Snapshot{}, errUnknownKind(kind)
	}
	return s.transition(actorID, kind, func(e *editor.Editor) error { return e.Close() })
}

func (s *adminService) RequestDelete(ctx context.Context, actorID string, kind models.EntityKind, id string) (editor.Snapshot, error) {
	if !kind.Valid() {
		return editor.Snapshot{}, errUnknownKind(kind)
	}
	if err := s.exists(ctx, kind, id); err != nil {
		return editor.Snapshot{}, err
	}
	return s.transition(actorID, kind, func(e *editor.Editor) error { return e.RequestDelete(id) })
}

func (s *adminService) ConfirmDelete(ctx context.Context, actorID string, kind models.EntityKind) (string, error) {
	if !kind.Valid() {
		return "", errUnknownKind(kind)
	}

	var deleted string
	err := s.editors.Do(actorID, string(kind), func(e *editor.Editor) error {
		target, err := e.Confirm()
		if err != nil {
			return err
		}
		if err := s.deleteEntity(ctx, kind, target); err != nil {
			// Silme başarısızsa onay penceresi açık kalır, admin tekrar deneyebilir.
			_ = e.RequestDelete(target)
			return err
		}
		deleted = target
		return nil
	})
	if err != nil {
		return "", mapEditorErr(err)
	}
	return deleted, nil
}

func (s *adminService) CancelDelete(actorID string, kind models.EntityKind) (editor.Snapshot, error) {
	if !kind.Valid() {
		return editor.Snapshot{}, errUnknownKind(kind)
	}
	return s.transition(actorID, kind, func(e *editor.Editor) error { return e.Cancel() })
}

// ─── Private Helpers ───

func (s *adminService) transition(actorID string, kind models.EntityKind, fn func(e *editor.Editor) error) (editor.Snapshot, error) {
	var snap editor.Snapshot
	err := s.editors.Do(actorID, string(kind), func(e *editor.Editor) error {
		err := fn(e)
		snap = e.Snapshot()
		return err
	})
	if err != nil {
		return snap, mapEditorErr(err)
	}
	return snap, nil
}

// closeAfterSave, kayıt başarıyla yazıldıktan sonra formu kapatır.
// Onay bekleyen bir silme varsa ona dokunulmaz.
func (s *adminService) closeAfterSave(actorID string, kind models.EntityKind) {
	_ = s.editors.Do(actorID, string(kind), func(e *editor.Editor) error {
		if e.Snapshot().State == editor.StateConfirmingDelete {
			return nil
		}
		return e.Close()
	})
}

func (s *adminService) exists(ctx context.Context, kind models.EntityKind, id string) error {
	var err error
	switch kind {
	case models.KindRestaurants:
		_, err = s.restaurantRepo.GetByID(ctx, id)
	case models.KindBlog:
		_, err = s.blogRepo.GetByID(ctx, id)
	case models.KindReviews:
		_, err = s.reviewRepo.GetByID(ctx, id)
	}
	return err
}

// deleteEntity, kaydı ve ona bağlı kayıtları siler, sonra event yayınlar.
//
// SQL sürücülerinde bağlı kayıtları şemadaki ON DELETE CASCADE siler; tek
// DELETE ifadesi atomiktir. Bellek sürücüsünde önce üst kayıt silinir, bağlı
// kayıtlar ancak bu başarılı olursa temizlenir.
func (s *adminService) deleteEntity(ctx context.Context, kind models.EntityKind, id string) error {
	switch kind {
	case models.KindRestaurants:
		if err := s.restaurantRepo.Delete(ctx, id); err != nil {
			return err
		}
		if !repository.CascadesOnDelete(s.restaurantRepo) {
			if err := s.reviewRepo.DeleteByRestaurant(ctx, id); err != nil {
				s.log.Error("failed to delete restaurant reviews", zap.String("restaurant_id", id), zap.Error(err))
			}
			if err := s.favoriteRepo.DeleteByRestaurant(ctx, id); err != nil {
				s.log.Error("failed to delete restaurant favorites", zap.String("restaurant_id", id), zap.Error(err))
			}
		}
		publish(s.hub, ws.OpRestaurantDelete, ws.DeletedData{ID: id})

	case models.KindBlog:
		if err := s.blogRepo.Delete(ctx, id); err != nil {
			return err
		}
		if !repository.CascadesOnDelete(s.blogRepo) {
			if err := s.commentRepo.DeleteByPost(ctx, id); err != nil {
				s.log.Error("failed to delete post comments", zap.String("post_id", id), zap.Error(err))
			}
		}
		publish(s.hub, ws.OpBlogPostDelete, ws.DeletedData{ID: id})

	case models.KindReviews:
		if err := s.reviewRepo.Delete(ctx, id); err != nil {
			return err
		}
		publish(s.hub, ws.OpReviewDelete, ws.DeletedData{ID: id})
	}
	return nil
}

func errUnknownKind(kind models.EntityKind) error {
	return fmt.Errorf("%w: unknown entity kind %q", pkg.ErrBadRequest, kind)
}

// mapEditorErr, geçersiz editor geçişini ErrBadRequest'e çevirir.
func mapEditorErr(err error) error {
	if errors.Is(err, editor.ErrInvalidTransition) {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return err
}
