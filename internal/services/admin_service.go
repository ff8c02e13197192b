package services

import (
	"strings"

	"cardlink_backend/internal/models"
	"cardlink_backend/internal/repositories"
	"cardlink_backend/internal/services/dto"
	"cardlink_backend/pkg/apperrors"
)

// AdminService backs the global admin panel: list everything, delete
// anything. Ownership scoping does not apply here.
type AdminService interface {
	ListUsers() ([]models.User, error)
	ListCards() ([]dto.AdminCardResponse, error)
	DeleteUser(id uint) error
	DeleteCard(cardID string) error
}

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
	cardRepo repositories.CardRepository
}

func NewAdminService(userRepo repositories.UserRepository, cardRepo repositories.CardRepository) AdminService {
	return &AdminServiceImpl{userRepo: userRepo, cardRepo: cardRepo}
}

func (s *AdminServiceImpl) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *AdminServiceImpl) ListCards() ([]dto.AdminCardResponse, error) {
	cards, err := s.cardRepo.FindAllMeta()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.AdminCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, dto.AdminCardResponse{
			ID:        c.ID,
			UserID:    c.UserID,
			Title:     c.Title,
			Theme:     c.Theme,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return out, nil
}

// DeleteUser removes the account only. Cards and events of the deleted
// user remain behind; that orphaning is the documented behavior, not an
// oversight.
func (s *AdminServiceImpl) DeleteUser(id uint) error {
	if err := s.userRepo.DeleteByID(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DeleteCard(cardID string) error {
	cardID = strings.TrimSpace(cardID)
	if err := s.cardRepo.DeleteByID(cardID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
