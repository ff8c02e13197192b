package repositories

import (
	"cardlink_backend/internal/models"

	"gorm.io/gorm"
)

// LabelCount is one bucket of a grouped breakdown, ordered by count
// descending at query time.
type LabelCount struct {
	Label string
	Count int64
}

type AnalyticsRepository interface {
	Insert(event *models.AnalyticsEvent) error
	CountByType(ownerID uint, cardID, eventType string) (int64, error)
	CountDistinctVisitors(ownerID uint, cardID string) (int64, error)
	ClickBreakdown(ownerID uint, cardID string) ([]LabelCount, error)
	SrcBreakdown(ownerID uint, cardID string) ([]LabelCount, error)
	Recent(ownerID uint, cardID string, limit int) ([]models.AnalyticsEvent, error)
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) Insert(event *models.AnalyticsEvent) error {
	return r.db.Create(event).Error
}

func (r *AnalyticsRepositoryImpl) CountByType(ownerID uint, cardID, eventType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AnalyticsEvent{}).
		Where("user_id = ? AND card_id = ? AND event_type = ?", ownerID, cardID, eventType).
		Count(&count).Error
	return count, err
}

// CountDistinctVisitors counts distinct non-empty visitor ids among view
// events. Views with an empty visitor id stay in the raw view total but
// are excluded here.
func (r *AnalyticsRepositoryImpl) CountDistinctVisitors(ownerID uint, cardID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AnalyticsEvent{}).
		Where("user_id = ? AND card_id = ? AND event_type = ? AND visitor_id <> ''",
			ownerID, cardID, models.EventTypeView).
		Distinct("visitor_id").
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepositoryImpl) ClickBreakdown(ownerID uint, cardID string) ([]LabelCount, error) {
	var rows []LabelCount
	err := r.db.Model(&models.AnalyticsEvent{}).
		Select("action AS label, COUNT(*) AS count").
		Where("user_id = ? AND card_id = ? AND event_type = ?", ownerID, cardID, models.EventTypeClick).
		Group("action").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) SrcBreakdown(ownerID uint, cardID string) ([]LabelCount, error) {
	var rows []LabelCount
	err := r.db.Model(&models.AnalyticsEvent{}).
		Select("src AS label, COUNT(*) AS count").
		Where("user_id = ? AND card_id = ? AND event_type = ?", ownerID, cardID, models.EventTypeView).
		Group("src").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// Recent returns the newest events first. Insertion order (id) rather
// than the client-supplied timestamp decides recency.
func (r *AnalyticsRepositoryImpl) Recent(ownerID uint, cardID string, limit int) ([]models.AnalyticsEvent, error) {
	var events []models.AnalyticsEvent
	err := r.db.Where("user_id = ? AND card_id = ?", ownerID, cardID).
		Order("id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
