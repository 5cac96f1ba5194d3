package models

type Event struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Capacity      int    `json:"capacity"`
	WaitlistLimit int    `json:"waitlist_limit"`
	GeoRequired   bool   `json:"geo_required"`
}
