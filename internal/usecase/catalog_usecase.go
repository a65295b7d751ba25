package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"
)

type CatalogUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
}

func NewCatalogUsecase(products repo.ProductRepository, categories repo.CategoryRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products, categories: categories}
}

type ProductListOutput struct {
	Products    []model.Product `json:"products"`
	Total       int64           `json:"total"`
	Pages       int64           `json:"pages"`
	CurrentPage int             `json:"currentPage"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, q repo.ProductListQuery) (ProductListOutput, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}

	products, total, err := u.products.List(ctx, q)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pages := (total + int64(q.Limit) - 1) / int64(q.Limit)
	return ProductListOutput{
		Products:    products,
		Total:       total,
		Pages:       pages,
		CurrentPage: q.Page,
	}, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type ProductInput struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Price            int64    `json:"price"`
	CategoryID       int64    `json:"category_id"`
	Images           []string `json:"images"`
	Stock            int64    `json:"stock"`
	Featured         bool     `json:"featured"`
	IsOnSale         bool     `json:"is_on_sale"`
	DiscountPercent  int64    `json:"discount_percent"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid stock")
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return NewHTTPError(http.StatusBadRequest, "invalid discount_percent")
	}
	return nil
}

func (in ProductInput) toModel() model.Product {
	p := model.Product{
		Name:             in.Name,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Price:            in.Price,
		CategoryID:       in.CategoryID,
		Images:           model.ImageList(in.Images),
		Stock:            in.Stock,
		Featured:         in.Featured,
		IsOnSale:         in.IsOnSale,
		DiscountPercent:  in.DiscountPercent,
	}
	if p.IsOnSale && p.DiscountPercent > 0 {
		p.SalePrice = p.Price - p.Price*p.DiscountPercent/100
	}
	return p
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}
	if _, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "unknown category")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.products.Create(ctx, in.toModel())
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "failed to create product")
	}
	return p, nil
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p := in.toModel()
	p.ID = id
	err := u.products.Update(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.products.SoftDelete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	items, err := u.categories.List(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (u *CatalogUsecase) CreateCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	c, err := u.categories.Create(ctx, model.Category{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "failed to create category")
	}
	return c, nil
}
