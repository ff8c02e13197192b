package repositories

import (
	"errors"
	"time"

	"cardlink_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound = errors.New("card not found")
	// ErrDuplicateCardID covers the whole duplicate-insert path: the card
	// id already exists, whether under the same or another owner.
	ErrDuplicateCardID = errors.New("card id already exists")
)

type CardRepository interface {
	ListByOwner(ownerID uint) ([]models.Card, error)
	FindOwned(cardID string, ownerID uint) (*models.Card, error)
	Create(card *models.Card) error
	UpdateOwned(cardID string, ownerID uint, title string, data datatypes.JSON, theme string) error
	DeleteOwned(cardID string, ownerID uint) error
	FindByID(cardID string) (*models.Card, error)
	GetOwnerID(cardID string) (uint, error)

	// Admin operations
	FindAllMeta() ([]models.Card, error)
	DeleteByID(cardID string) error
}

type CardRepositoryImpl struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &CardRepositoryImpl{db: db}
}

func (r *CardRepositoryImpl) ListByOwner(ownerID uint) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&cards).Error
	return cards, err
}

// FindOwned looks up a card scoped to its owner. A card that exists under
// another owner is invisible here; the save path then attempts an insert
// and trips the primary-key constraint.
func (r *CardRepositoryImpl) FindOwned(cardID string, ownerID uint) (*models.Card, error) {
	var card models.Card
	err := r.db.First(&card, "id = ? AND user_id = ?", cardID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepositoryImpl) Create(card *models.Card) error {
	err := r.db.Create(card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCardID
		}
		return err
	}
	return nil
}

func (r *CardRepositoryImpl) UpdateOwned(cardID string, ownerID uint, title string, data datatypes.JSON, theme string) error {
	result := r.db.Model(&models.Card{}).
		Where("id = ? AND user_id = ?", cardID, ownerID).
		Updates(map[string]interface{}{
			"title":      title,
			"data":       data,
			"theme":      theme,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// DeleteOwned is idempotent: deleting an absent card, or one owned by
// someone else, succeeds without reporting anything.
func (r *CardRepositoryImpl) DeleteOwned(cardID string, ownerID uint) error {
	return r.db.Where("id = ? AND user_id = ?", cardID, ownerID).Delete(&models.Card{}).Error
}

func (r *CardRepositoryImpl) FindByID(cardID string) (*models.Card, error) {
	var card models.Card
	err := r.db.First(&card, "id = ?", cardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// GetOwnerID resolves the current owner of a card for event attribution.
func (r *CardRepositoryImpl) GetOwnerID(cardID string) (uint, error) {
	var card models.Card
	err := r.db.Select("user_id").First(&card, "id = ?", cardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCardNotFound
		}
		return 0, err
	}
	return card.UserID, nil
}

// FindAllMeta returns every card without its data payload.
func (r *CardRepositoryImpl) FindAllMeta() ([]models.Card, error) {
	var cards []models.Card
	err := r.db.Select("id", "user_id", "title", "theme", "created_at", "updated_at").
		Order("updated_at DESC").Find(&cards).Error
	return cards, err
}

func (r *CardRepositoryImpl) DeleteByID(cardID string) error {
	return r.db.Where("id = ?", cardID).Delete(&models.Card{}).Error
}
