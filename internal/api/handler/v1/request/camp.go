package request

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const slugRegexPattern = `^[a-z0-9]+(?:-[a-z0-9]+)*$`

var (
	slugExp = regexp.MustCompile(slugRegexPattern)

	errInvalidAgeRange = errors.New("age_min must not exceed age_max")
	errSessionDates    = errors.New("session end_date must not be before start_date")
)

type CampRequest struct {
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	Country          string  `json:"country"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	CoverImage       string  `json:"cover_image"`
	Logo             string  `json:"logo"`
	VideoURL         string  `json:"video_url"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Website          string  `json:"website"`
	AgeMin           int     `json:"age_min"`
	AgeMax           int     `json:"age_max"`
	Published        bool    `json:"published"`
	Featured         bool    `json:"featured"`
	RegionID         uint    `json:"region_id"`
	CampTypeID       uint    `json:"camp_type_id"`
	CategoryIDs      []uint  `json:"category_ids"`
}

func (req *CampRequest) Validate(imageHosts []string) error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Slug, validation.Required, validation.Match(slugExp)),
		validation.Field(&req.ShortDescription, validation.Length(0, 300)),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.VideoURL, is.URL),
		validation.Field(&req.AgeMin, validation.Min(0), validation.Max(18)),
		validation.Field(&req.AgeMax, validation.Min(0), validation.Max(18)),
		validation.Field(&req.RegionID, validation.Required),
		validation.Field(&req.CampTypeID, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.AgeMin > req.AgeMax {
		return errInvalidAgeRange
	}

	for _, img := range []string{req.CoverImage, req.Logo} {
		if err := validateImageURL(img, imageHosts); err != nil {
			return err
		}
	}

	return nil
}

// validateImageURL enforces the configured image host allowlist. An
// empty allowlist accepts any https URL.
func validateImageURL(raw string, allowedHosts []string) error {
	if raw == "" {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
		return fmt.Errorf("image %q must be a valid https URL", raw)
	}

	if len(allowedHosts) == 0 {
		return nil
	}

	for _, host := range allowedHosts {
		if parsed.Host == host || strings.HasSuffix(parsed.Host, "."+host) {
			return nil
		}
	}

	return fmt.Errorf("image host %q is not allowed", parsed.Host)
}

type SessionItem struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
}

type ReplaceSessionsRequest struct {
	Sessions []SessionItem `json:"sessions"`
}

func (req *ReplaceSessionsRequest) Validate() error {
	for _, s := range req.Sessions {
		err := validation.ValidateStruct(
			&s,
			validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
			validation.Field(&s.StartDate, validation.Required),
			validation.Field(&s.EndDate, validation.Required),
			validation.Field(&s.Price, validation.Min(0.0)),
			validation.Field(&s.Currency, validation.Required, validation.Length(3, 3), is.UpperCase),
		)
		if err != nil {
			return err
		}

		if s.EndDate.Before(s.StartDate) {
			return errSessionDates
		}
	}

	return nil
}

type GalleryItem struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type ReplaceGalleryRequest struct {
	Images []GalleryItem `json:"images"`
}

func (req *ReplaceGalleryRequest) Validate(imageHosts []string) error {
	for _, img := range req.Images {
		if err := validation.ValidateStruct(
			&img,
			validation.Field(&img.URL, validation.Required),
			validation.Field(&img.Alt, validation.Length(0, 200)),
		); err != nil {
			return err
		}

		if err := validateImageURL(img.URL, imageHosts); err != nil {
			return err
		}
	}

	return nil
}

type ReplaceNamesRequest struct {
	Names []string `json:"names"`
}

func (req *ReplaceNamesRequest) Validate() error {
	for _, name := range req.Names {
		if err := validation.Validate(name, validation.Required, validation.Length(1, 100)); err != nil {
			return err
		}
	}

	return nil
}

type ReplaceHighlightsRequest struct {
	Texts []string `json:"texts"`
}

func (req *ReplaceHighlightsRequest) Validate() error {
	for _, text := range req.Texts {
		if err := validation.Validate(text, validation.Required, validation.Length(1, 300)); err != nil {
			return err
		}
	}

	return nil
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ReplaceFAQsRequest struct {
	FAQs []FAQItem `json:"faqs"`
}

func (req *ReplaceFAQsRequest) Validate() error {
	for _, faq := range req.FAQs {
		if err := validation.ValidateStruct(
			&faq,
			validation.Field(&faq.Question, validation.Required, validation.Length(1, 300)),
			validation.Field(&faq.Answer, validation.Required),
		); err != nil {
			return err
		}
	}

	return nil
}

type ScheduleItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ReplaceScheduleRequest struct {
	Entries []ScheduleItem `json:"entries"`
}

func (req *ReplaceScheduleRequest) Validate() error {
	for _, entry := range req.Entries {
		if err := validation.ValidateStruct(
			&entry,
			validation.Field(&entry.Title, validation.Required, validation.Length(1, 100)),
		); err != nil {
			return err
		}
	}

	return nil
}
