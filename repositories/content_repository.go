package repositories

import (
	"newsroom-api/models"

	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(content *models.Content) error
	GetPublishedList(params models.ContentListParams) ([]models.Content, int64, error)
	GetPublishedByID(id uint) (*models.Content, error)
	IncrementViews(id uint) error
	ListByPublisher(publisherID uint) ([]models.Content, error)
	GetOwned(id, publisherID uint) (*models.Content, error)
	Update(content *models.Content) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *models.Content) error {
	return r.db.Create(content).Error
}

func (r *contentRepository) GetPublishedList(params models.ContentListParams) ([]models.Content, int64, error) {
	var contents []models.Content
	var total int64

	query := r.db.Model(&models.Content{}).
		Preload("Publisher").
		Where("status = ?", models.StatusPublished)

	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&contents).Error

	return contents, total, err
}

func (r *contentRepository) GetPublishedByID(id uint) (*models.Content, error) {
	var content models.Content
	err := r.db.Preload("Publisher").
		Where("status = ?", models.StatusPublished).
		First(&content, id).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Content{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *contentRepository) ListByPublisher(publisherID uint) ([]models.Content, error) {
	var contents []models.Content
	err := r.db.Where("publisher_id = ?", publisherID).
		Order("created_at desc").
		Find(&contents).Error
	return contents, err
}

func (r *contentRepository) GetOwned(id, publisherID uint) (*models.Content, error) {
	var content models.Content
	err := r.db.Where("id = ? AND publisher_id = ?", id, publisherID).
		First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) Update(content *models.Content) error {
	return r.db.Save(content).Error
}
