package dto

import (
	"strings"

	"github.com/lib/pq"

	"dayamotor_backend/internals/features/motorcycles/model"
)

type CreateMotorcycleRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Specs       string   `json:"specs"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Available   *bool    `json:"available"`
}

// Validate mengumpulkan SEMUA error validasi, bukan berhenti di yang pertama.
func (r *CreateMotorcycleRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(r.Category) == "" {
		errs = append(errs, "Category is required")
	} else if !model.IsValidCategory(r.Category) {
		errs = append(errs, "Category must be one of: "+strings.Join(model.ValidCategories, ", "))
	}
	if r.Price <= 0 {
		errs = append(errs, "Valid price is required")
	}
	return errs
}

func (r *CreateMotorcycleRequest) ToModel() *model.Motorcycle {
	desc := r.Description
	if desc == "" {
		desc = r.Specs
	}
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return &model.Motorcycle{
		Name:        strings.TrimSpace(r.Name),
		Category:    r.Category,
		Price:       r.Price,
		Image:       r.Image,
		Specs:       r.Specs,
		Description: desc,
		Features:    pq.StringArray(r.Features),
		Available:   available,
	}
}

// UpdateMotorcycleRequest: semua field opsional, hanya yang terisi yang diubah.
type UpdateMotorcycleRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Specs       *string  `json:"specs"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
	Available   *bool    `json:"available"`
}

func (r *UpdateMotorcycleRequest) Validate() []string {
	var errs []string
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if r.Category != nil {
		if strings.TrimSpace(*r.Category) == "" {
			errs = append(errs, "Category is required")
		} else if !model.IsValidCategory(*r.Category) {
			errs = append(errs, "Category must be one of: "+strings.Join(model.ValidCategories, ", "))
		}
	}
	if r.Price != nil && *r.Price <= 0 {
		errs = append(errs, "Valid price is required")
	}
	return errs
}

// Patch membangun map kolom→nilai dari field yang terisi saja.
func (r *UpdateMotorcycleRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		patch["category"] = *r.Category
	}
	if r.Price != nil {
		patch["price"] = *r.Price
	}
	if r.Image != nil {
		patch["image"] = *r.Image
	}
	if r.Specs != nil {
		patch["specs"] = *r.Specs
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.Features != nil {
		patch["features"] = pq.StringArray(r.Features)
	}
	if r.Available != nil {
		patch["available"] = *r.Available
	}
	return patch
}

type UploadImageRequest struct {
	File     string `json:"file" validate:"required"`
	Filename string `json:"filename" validate:"required"`
}
