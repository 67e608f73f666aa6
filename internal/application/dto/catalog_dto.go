package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ImageURL string `json:"image_url"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	ImageURL *string `json:"image_url"`
	Status   *string `json:"status"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	LogoURL string `json:"logo_url"`
}

// UpdateBrandRequest entrada para actualizar una marca.
type UpdateBrandRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	LogoURL *string `json:"logo_url"`
	Status  *string `json:"status"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandListResponse lista paginada de marcas.
type BrandListResponse struct {
	Items []BrandResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateBannerRequest entrada para crear un banner.
type CreateBannerRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	ImageURL string `json:"image_url" validate:"required"`
	LinkURL  string `json:"link_url"`
	Position int    `json:"position"`
}

// UpdateBannerRequest entrada para actualizar un banner.
type UpdateBannerRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	ImageURL *string `json:"image_url"`
	LinkURL  *string `json:"link_url"`
	Position *int    `json:"position"`
	Status   *string `json:"status"`
}

// BannerResponse salida de un banner.
type BannerResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	Position  int       `json:"position"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BannerListResponse lista paginada de banners.
type BannerListResponse struct {
	Items []BannerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
