package services

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"newsorbit-api/config"
	"newsorbit-api/models"
	"newsorbit-api/repositories"
)

type ArticleService interface {
	Submit(req models.SubmitArticleRequest, actor *models.User) (*models.Article, error)
	Edit(id uint, req models.UpdateArticleRequest, actor *models.User) (*models.Article, error)
	SetStatus(id uint, status models.ArticleStatus) error
	ViewPublic(id uint) (*models.Article, error)
	GetForActor(id uint, actor *models.User) (*models.Article, error)
	Delete(id uint) error
	ListPublic(language models.Language, category string, page, limit int) ([]models.Article, int64, error)
	ListByAuthor(authorID uint, page, limit int) ([]models.Article, int64, error)
	ListAll(params models.ArticleListParams) ([]models.Article, int64, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	log         zerolog.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		log:         log,
	}
}

// Submit creates an article in the status implied by the action: drafts stay
// private, an admin publish goes straight to approved, anyone else's publish
// lands in the review queue.
func (s *articleService) Submit(req models.SubmitArticleRequest, actor *models.User) (*models.Article, error) {
	if req.Title == "" || req.Content == "" {
		return nil, models.ErrorValidation{Message: "title and content are required"}
	}
	if !config.IsValidCategory(req.Category) {
		return nil, models.ErrorValidation{Message: "unknown category"}
	}

	language := req.Language
	if language == "" {
		language = config.ForcedDefaultLanguage
	}
	if !language.Valid() {
		return nil, models.ErrorValidation{Message: "language must be hi or en"}
	}

	var status models.ArticleStatus
	switch req.Action {
	case models.ActionSaveDraft:
		status = models.ArticleStatusDraft
	case models.ActionPublish:
		if actor.Role == models.RoleAdmin {
			status = models.ArticleStatusApproved
		} else {
			status = models.ArticleStatusPending
		}
	default:
		return nil, models.ErrorValidation{Message: "action must be save-draft or publish"}
	}

	// The publish timestamp is caller-settable, so authors may backdate or
	// schedule.
	createdAt := time.Now()
	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		createdAt = *req.CreatedAt
	}

	article := &models.Article{
		Title:            req.Title,
		SubHeadline:      req.SubHeadline,
		Content:          req.Content,
		Image:            req.Image,
		AdditionalImages: req.AdditionalImages,
		Category:         req.Category,
		Location:         req.Location,
		Tags:             req.Tags,
		Language:         language,
		AuthorID:         actor.ID,
		AuthorName:       actor.Name,
		Status:           status,
		Views:            0,
		CreatedAt:        createdAt,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return article, nil
}

// Edit merge-writes the supplied fields only; status is untouched unless the
// caller includes it. Concurrent edits with disjoint field sets both land.
func (s *articleService) Edit(id uint, req models.UpdateArticleRequest, actor *models.User) (*models.Article, error) {
	article, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if actor.Role != models.RoleAdmin && article.AuthorID != actor.ID {
		return nil, models.ErrNotArticleAuthor
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, models.ErrorValidation{Message: "title cannot be empty"}
		}
		fields["title"] = *req.Title
	}
	if req.SubHeadline != nil {
		fields["sub_headline"] = *req.SubHeadline
	}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, models.ErrorValidation{Message: "content cannot be empty"}
		}
		fields["content"] = *req.Content
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.AdditionalImages != nil {
		fields["additional_images"] = *req.AdditionalImages
	}
	if req.Category != nil {
		if !config.IsValidCategory(*req.Category) {
			return nil, models.ErrorValidation{Message: "unknown category"}
		}
		fields["category"] = *req.Category
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if req.Language != nil {
		if !req.Language.Valid() {
			return nil, models.ErrorValidation{Message: "language must be hi or en"}
		}
		fields["language"] = *req.Language
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, models.ErrorValidation{Message: "unknown status"}
		}
		fields["status"] = *req.Status
	}
	if req.CreatedAt != nil {
		fields["created_at"] = *req.CreatedAt
	}

	if len(fields) > 0 {
		if err := s.articleRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	return s.getByID(id)
}

// SetStatus is the admin status setter. Transitions are deliberately
// permissive: any known status may replace any other.
func (s *articleService) SetStatus(id uint, status models.ArticleStatus) error {
	if !status.Valid() {
		return models.ErrorValidation{Message: "unknown status"}
	}

	if _, err := s.getByID(id); err != nil {
		return err
	}

	return s.articleRepo.UpdateFields(id, map[string]interface{}{
		"status": status,
	})
}

// ViewPublic returns an approved article and bumps its view counter. The
// increment is best-effort: a failed counter write never blocks the read.
func (s *articleService) ViewPublic(id uint) (*models.Article, error) {
	article, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if article.Status != models.ArticleStatusApproved {
		return nil, models.ErrArticleNotFound
	}

	if err := s.articleRepo.IncrementViews(id); err != nil {
		s.log.Warn().Err(err).Uint("article_id", id).Msg("view counter increment failed")
	} else {
		article.Views++
	}

	return article, nil
}

// GetForActor applies the visibility rules for authenticated readers: drafts
// are author-only, pending and rejected are author plus admin, approved is
// visible to everyone.
func (s *articleService) GetForActor(id uint, actor *models.User) (*models.Article, error) {
	article, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if article.Status == models.ArticleStatusApproved {
		return article, nil
	}
	if article.AuthorID == actor.ID {
		return article, nil
	}
	if actor.Role == models.RoleAdmin && article.Status != models.ArticleStatusDraft {
		return article, nil
	}

	return nil, models.ErrArticleNotFound
}

// Delete is irreversible.
func (s *articleService) Delete(id uint) error {
	if _, err := s.getByID(id); err != nil {
		return err
	}
	return s.articleRepo.Delete(id)
}

// ListPublic always forces approved status; the language defaults to the
// forced site locale when the caller names none.
func (s *articleService) ListPublic(language models.Language, category string, page, limit int) ([]models.Article, int64, error) {
	if language == "" {
		language = config.ForcedDefaultLanguage
	}
	if category == "top-news" {
		category = ""
	}

	return s.articleRepo.GetList(models.ArticleListParams{
		Status:   models.ArticleStatusApproved,
		Language: language,
		Category: category,
		Page:     page,
		Limit:    limit,
	})
}

func (s *articleService) ListByAuthor(authorID uint, page, limit int) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(models.ArticleListParams{
		AuthorID: authorID,
		Page:     page,
		Limit:    limit,
	})
}

// ListAll is the admin view: all statuses, all languages unless filtered.
func (s *articleService) ListAll(params models.ArticleListParams) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params)
}

func (s *articleService) getByID(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}
