// Package alerts serves the vendor alert feed shown on the dashboard.
package alerts

import "github.com/fairyhunter13/vendor-supply-hub/internal/model"

// Alert types.
const (
	TypePrice   = "price"
	TypeQuality = "quality"
)

// Feed is a fixed list of alerts.
type Feed struct {
	alerts []model.Alert
}

// NewStaticFeed returns the launch alert list.
func NewStaticFeed() *Feed {
	return &Feed{alerts: []model.Alert{
		{Type: TypePrice, Message: "Vendor A dropped price by 10%!"},
		{Type: TypeQuality, Message: "Vendor B received a 5-star review."},
		{Type: TypePrice, Message: "Vendor C offers a flash sale for 2 hours."},
	}}
}

// List returns a copy of the feed.
func (f *Feed) List() []model.Alert {
	out := make([]model.Alert, len(f.alerts))
	copy(out, f.alerts)
	return out
}
