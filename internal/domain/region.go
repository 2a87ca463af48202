package domain

import "time"

// Region is one node in the geographic tree (continent, sub-region,
// country, city). ParentID is nil for roots.
type Region struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	ParentID    *uint     `json:"parent_id"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// CampCount counts published camps attached to this node only,
	// not summed from descendants.
	CampCount int64 `json:"camp_count"`

	Parent   *Region  `json:"parent,omitempty"`
	Children []Region `json:"children,omitempty"`
}
