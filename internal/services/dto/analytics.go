package dto

import "time"

// RecordEventRequest is the anonymous ingestion payload. No field except
// card_id and event_type is required.
type RecordEventRequest struct {
	CardID    string `json:"card_id"`
	EventType string `json:"event_type"`
	Action    string `json:"action"`
	Src       string `json:"src"`
	VisitorID string `json:"visitor_id"`
	TS        string `json:"ts"`
}

type RecentEvent struct {
	EventType string    `json:"event_type"`
	Action    string    `json:"action"`
	Src       string    `json:"src"`
	VisitorID string    `json:"visitor_id"`
	TS        time.Time `json:"ts"`
}

// SummaryResponse aggregates a card's engagement for its owner.
// Breakdown buckets come out of the store ordered by count descending;
// empty labels are folded into "unknown" (clicks) and "direct" (views).
type SummaryResponse struct {
	CardID         string           `json:"card_id"`
	Views          int64            `json:"views"`
	Clicks         int64            `json:"clicks"`
	Saves          int64            `json:"saves"`
	UniqueVisitors int64            `json:"unique_visitors"`
	ClickBreakdown map[string]int64 `json:"click_breakdown"`
	SrcBreakdown   map[string]int64 `json:"src_breakdown"`
	Recent         []RecentEvent    `json:"recent"`
}
