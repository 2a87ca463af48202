package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RegionRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ParentID    *uint  `json:"parent_id"`
	SortOrder   int    `json:"sort_order"`
}

func (req *RegionRequest) Validate(imageHosts []string) error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Slug, validation.Required, validation.Match(slugExp)),
		validation.Field(&req.SortOrder, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	return validateImageURL(req.Image, imageHosts)
}

type CampTypeRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func (req *CampTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Slug, validation.Required, validation.Match(slugExp)),
		validation.Field(&req.Icon, validation.Length(0, 100)),
		validation.Field(&req.SortOrder, validation.Min(0)),
	)
}

type CampCategoryRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
}

func (req *CampCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Slug, validation.Required, validation.Match(slugExp)),
		validation.Field(&req.SortOrder, validation.Min(0)),
	)
}
