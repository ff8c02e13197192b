package services

import (
	"bytes"
	"strings"
	"time"

	"cardlink_backend/internal/models"
	"cardlink_backend/internal/repositories"
	"cardlink_backend/internal/services/dto"
	"cardlink_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type CardService interface {
	List(ownerID uint) ([]dto.CardResponse, error)
	Save(ownerID uint, req *dto.SaveCardRequest) (string, error)
	Delete(ownerID uint, cardID string) error
	GetPublic(cardID string) (*dto.PublicCardResponse, error)
}

type CardServiceImpl struct {
	cardRepo repositories.CardRepository
}

func NewCardService(cardRepo repositories.CardRepository) CardService {
	return &CardServiceImpl{cardRepo: cardRepo}
}

func (s *CardServiceImpl) List(ownerID uint) ([]dto.CardResponse, error) {
	cards, err := s.cardRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, dto.CardResponse{
			ID:        c.ID,
			Title:     c.Title,
			Data:      c.Data,
			Theme:     c.Theme,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return out, nil
}

// Save upserts a card by its client-chosen id, scoped to the owner. An id
// held by another owner is invisible to the lookup, so that path falls
// through to an insert and surfaces the primary-key conflict.
func (s *CardServiceImpl) Save(ownerID uint, req *dto.SaveCardRequest) (string, error) {
	cardID := strings.TrimSpace(req.ID)
	if cardID == "" {
		return "", apperrors.NewBadRequestError("Card id required")
	}

	// Any JSON value is accepted, including the empty object; only an
	// absent or null payload is rejected.
	data := bytes.TrimSpace(req.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", apperrors.NewBadRequestError("Card data required")
	}

	title := strings.TrimSpace(req.Title)
	theme := strings.TrimSpace(req.Theme)

	_, err := s.cardRepo.FindOwned(cardID, ownerID)
	switch {
	case err == nil:
		if err := s.cardRepo.UpdateOwned(cardID, ownerID, title, datatypes.JSON(data), theme); err != nil {
			return "", apperrors.InternalError(err)
		}
	case apperrors.Is(err, repositories.ErrCardNotFound):
		now := time.Now().UTC()
		card := &models.Card{
			ID:        cardID,
			UserID:    ownerID,
			Title:     title,
			Data:      datatypes.JSON(data),
			Theme:     theme,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.cardRepo.Create(card); err != nil {
			if apperrors.Is(err, repositories.ErrDuplicateCardID) {
				return "", apperrors.NewConflictError("cards", "Card id already in use")
			}
			return "", apperrors.InternalError(err)
		}
	default:
		return "", apperrors.InternalError(err)
	}

	return cardID, nil
}

// Delete never reports whether anything was removed.
func (s *CardServiceImpl) Delete(ownerID uint, cardID string) error {
	if err := s.cardRepo.DeleteOwned(strings.TrimSpace(cardID), ownerID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CardServiceImpl) GetPublic(cardID string) (*dto.PublicCardResponse, error) {
	card, err := s.cardRepo.FindByID(strings.TrimSpace(cardID))
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.NewNotFoundError("cards", "Not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.PublicCardResponse{
		ID:          card.ID,
		Data:        card.Data,
		Theme:       card.Theme,
		OwnerUserID: card.UserID,
	}, nil
}
