package services

import (
	"strings"
	"time"

	"cardlink_backend/internal/models"
	"cardlink_backend/internal/repositories"
	"cardlink_backend/internal/services/dto"
	"cardlink_backend/pkg/apperrors"
)

const recentEventsLimit = 50

type AnalyticsService interface {
	RecordEvent(req *dto.RecordEventRequest) error
	Summarize(callerID uint, cardID string) (*dto.SummaryResponse, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo repositories.AnalyticsRepository
	cardRepo      repositories.CardRepository
}

func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepository, cardRepo repositories.CardRepository) AnalyticsService {
	return &AnalyticsServiceImpl{analyticsRepo: analyticsRepo, cardRepo: cardRepo}
}

// RecordEvent ingests an anonymous engagement event. The event is stored
// under the card OWNER's user id, resolved here and never again — public
// visitors have no identity of their own.
func (s *AnalyticsServiceImpl) RecordEvent(req *dto.RecordEventRequest) error {
	cardID := strings.TrimSpace(req.CardID)
	eventType := strings.ToLower(strings.TrimSpace(req.EventType))

	if cardID == "" || !models.ValidEventType(eventType) {
		return apperrors.NewBadRequestError("card_id + valid event_type required")
	}

	ownerID, err := s.cardRepo.GetOwnerID(cardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return apperrors.NewNotFoundError("analytics", "Card not found")
		}
		return apperrors.InternalError(err)
	}

	event := &models.AnalyticsEvent{
		UserID:    ownerID,
		CardID:    cardID,
		EventType: eventType,
		Action:    strings.ToLower(strings.TrimSpace(req.Action)),
		Src:       strings.ToLower(strings.TrimSpace(req.Src)),
		VisitorID: strings.TrimSpace(req.VisitorID),
		CreatedAt: parseEventTime(req.TS),
	}
	if err := s.analyticsRepo.Insert(event); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// parseEventTime accepts a client RFC3339 timestamp and falls back to
// ingestion time for anything else, matching the permissive beacon
// contract.
func parseEventTime(ts string) time.Time {
	ts = strings.TrimSpace(ts)
	if ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

// Summarize aggregates a card's events for its owner. The existence check
// deliberately precedes the ownership check: a missing card is 404 for
// everyone, an existing one is 403 for non-owners.
func (s *AnalyticsServiceImpl) Summarize(callerID uint, cardID string) (*dto.SummaryResponse, error) {
	cardID = strings.TrimSpace(cardID)

	ownerID, err := s.cardRepo.GetOwnerID(cardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.NewNotFoundError("analytics", "Card not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if ownerID != callerID {
		return nil, apperrors.NewForbiddenError("Not allowed")
	}

	summary := &dto.SummaryResponse{CardID: cardID}

	if summary.Views, err = s.analyticsRepo.CountByType(ownerID, cardID, models.EventTypeView); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if summary.Clicks, err = s.analyticsRepo.CountByType(ownerID, cardID, models.EventTypeClick); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if summary.Saves, err = s.analyticsRepo.CountByType(ownerID, cardID, models.EventTypeSave); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if summary.UniqueVisitors, err = s.analyticsRepo.CountDistinctVisitors(ownerID, cardID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	clickRows, err := s.analyticsRepo.ClickBreakdown(ownerID, cardID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	summary.ClickBreakdown = foldBreakdown(clickRows, "unknown")

	srcRows, err := s.analyticsRepo.SrcBreakdown(ownerID, cardID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	summary.SrcBreakdown = foldBreakdown(srcRows, "direct")

	events, err := s.analyticsRepo.Recent(ownerID, cardID, recentEventsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	summary.Recent = make([]dto.RecentEvent, 0, len(events))
	for _, e := range events {
		summary.Recent = append(summary.Recent, dto.RecentEvent{
			EventType: e.EventType,
			Action:    e.Action,
			Src:       e.Src,
			VisitorID: e.VisitorID,
			TS:        e.CreatedAt,
		})
	}

	return summary, nil
}

// foldBreakdown maps grouped rows into label->count, bucketing empty
// labels under the fallback. Counts add up if the fallback label also
// occurs literally.
func foldBreakdown(rows []repositories.LabelCount, fallback string) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = fallback
		}
		out[label] += row.Count
	}
	return out
}
