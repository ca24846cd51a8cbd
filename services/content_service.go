package services

import (
	"newsroom-api/models"
	"newsroom-api/repositories"

	"gorm.io/datatypes"
)

type ContentService interface {
	CreateContent(req models.CreateContentRequest, publisherID uint) (*models.Content, error)
	GetPublishedContents(params models.ContentListParams) ([]models.Content, int64, error)
	GetPublishedContent(id uint) (*models.Content, error)
	GetPublisherContents(publisherID uint) ([]models.Content, error)
	UpdateContent(id uint, req models.UpdateContentRequest, publisherID uint) (*models.Content, error)
	PublishContent(id, publisherID uint) (*models.Content, error)
}

type contentService struct {
	contentRepo repositories.ContentRepository
}

func NewContentService(contentRepo repositories.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) CreateContent(req models.CreateContentRequest, publisherID uint) (*models.Content, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	content := &models.Content{
		Title:         req.Title,
		Content:       req.Content,
		Type:          req.Type,
		Category:      req.Category,
		Tags:          datatypes.NewJSONSlice(tags),
		Status:        models.StatusDraft,
		FeaturedImage: req.FeaturedImage,
		VideoURL:      req.VideoURL,
		ReadTime:      req.ReadTime,
		PublisherID:   publisherID,
	}

	if err := s.contentRepo.Create(content); err != nil {
		return nil, err
	}

	return content, nil
}

func (s *contentService) GetPublishedContents(params models.ContentListParams) ([]models.Content, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}
	return s.contentRepo.GetPublishedList(params)
}

// GetPublishedContent increments the view counter as a side effect of the
// read. Every fetch accumulates: repeated reads are not idempotent.
func (s *contentService) GetPublishedContent(id uint) (*models.Content, error) {
	content, err := s.contentRepo.GetPublishedByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.contentRepo.IncrementViews(content.ID); err != nil {
		return nil, err
	}
	content.Views++

	return content, nil
}

func (s *contentService) GetPublisherContents(publisherID uint) ([]models.Content, error) {
	return s.contentRepo.ListByPublisher(publisherID)
}

// UpdateContent applies the whitelisted fields of the request onto an owned
// item. A miss on the ownership lookup surfaces as record-not-found so
// callers cannot probe other publishers' ids.
func (s *contentService) UpdateContent(id uint, req models.UpdateContentRequest, publisherID uint) (*models.Content, error) {
	content, err := s.contentRepo.GetOwned(id, publisherID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Content != nil {
		content.Content = *req.Content
	}
	if req.Type != nil {
		content.Type = *req.Type
	}
	if req.Category != nil {
		content.Category = *req.Category
	}
	if req.Tags != nil {
		content.Tags = datatypes.NewJSONSlice(*req.Tags)
	}
	if req.Status != nil {
		content.Status = *req.Status
	}
	if req.FeaturedImage != nil {
		content.FeaturedImage = *req.FeaturedImage
	}
	if req.VideoURL != nil {
		content.VideoURL = *req.VideoURL
	}
	if req.ReadTime != nil {
		content.ReadTime = *req.ReadTime
	}

	if err := s.contentRepo.Update(content); err != nil {
		return nil, err
	}

	return content, nil
}

func (s *contentService) PublishContent(id, publisherID uint) (*models.Content, error) {
	content, err := s.contentRepo.GetOwned(id, publisherID)
	if err != nil {
		return nil, err
	}

	content.Status = models.StatusPublished
	if err := s.contentRepo.Update(content); err != nil {
		return nil, err
	}

	return content, nil
}
