package dtos

// FeedItem is the JSON shape the FullCalendar widget consumes. Title
// and colors are a fixed contract with the frontend.
type FeedItem struct {
	Title           string `json:"title"`
	Start           string `json:"start"`
	AllDay          bool   `json:"allDay"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
}
