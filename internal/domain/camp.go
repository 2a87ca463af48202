package domain

import "time"

// Camp is the central aggregate of the directory. It exclusively owns its
// child collections; deleting a camp removes all of them.
type Camp struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description,omitempty"`
	ShortDescription string  `json:"short_description,omitempty"`
	Address          string  `json:"address,omitempty"`
	City             string  `json:"city,omitempty"`
	Country          string  `json:"country,omitempty"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
	CoverImage       string  `json:"cover_image,omitempty"`
	Logo             string  `json:"logo,omitempty"`
	VideoURL         string  `json:"video_url,omitempty"`
	Email            string  `json:"email,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Website          string  `json:"website,omitempty"`
	AgeMin           int     `json:"age_min,omitempty"`
	AgeMax           int     `json:"age_max,omitempty"`
	Published        bool    `json:"published"`
	Featured         bool    `json:"featured"`

	RegionID   uint `json:"region_id"`
	CampTypeID uint `json:"camp_type_id"`
	OwnerID    uint `json:"owner_id"`

	Region     *Region        `json:"region,omitempty"`
	CampType   *CampType      `json:"camp_type,omitempty"`
	Categories []CampCategory `json:"categories,omitempty"`

	Sessions   []CampSession   `json:"sessions,omitempty"`
	Gallery    []GalleryImage  `json:"gallery,omitempty"`
	Activities []Activity      `json:"activities,omitempty"`
	Facilities []Facility      `json:"facilities,omitempty"`
	Highlights []Highlight     `json:"highlights,omitempty"`
	FAQs       []FAQ           `json:"faqs,omitempty"`
	Schedule   []ScheduleEntry `json:"schedule,omitempty"`
	Reviews    []Review        `json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CampSession struct {
	ID        uint      `json:"id"`
	CampID    uint      `json:"camp_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	SortOrder int       `json:"sort_order"`
}

type GalleryImage struct {
	ID        uint   `json:"id"`
	CampID    uint   `json:"camp_id"`
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type Activity struct {
	ID        uint   `json:"id"`
	CampID    uint   `json:"camp_id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type Facility struct {
	ID        uint   `json:"id"`
	CampID    uint   `json:"camp_id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type Highlight struct {
	ID        uint   `json:"id"`
	CampID    uint   `json:"camp_id"`
	Text      string `json:"text"`
	SortOrder int    `json:"sort_order"`
}

type FAQ struct {
	ID        uint   `json:"id"`
	CampID    uint   `json:"camp_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sort_order"`
}

type ScheduleEntry struct {
	ID          uint   `json:"id"`
	CampID      uint   `json:"camp_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

type Review struct {
	ID        uint      `json:"id"`
	CampID    uint      `json:"camp_id"`
	UserID    uint      `json:"user_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Approved  bool      `json:"approved"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CampFilter is the closed set of listing predicates. Zero values mean
// "not filtered".
type CampFilter struct {
	Search        string
	RegionSlug    string
	TypeSlug      string
	CategorySlug  string
	PublishedOnly bool
	Page          int
	Limit         int
}

type CampPage struct {
	Camps      []Camp `json:"camps"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}
