package models

import "time"

// LotteryResult is an append-only audit snapshot of a single draw.
// EntrantIDs are pairwise distinct and keep selection order.
type LotteryResult struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	EntrantIDs []string  `json:"entrant_ids"`
	DrawnAt    time.Time `json:"drawn_at"`
}
