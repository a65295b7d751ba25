package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"
)

type ShippingUsecase struct {
	methods repo.ShippingMethodRepository
}

func NewShippingUsecase(methods repo.ShippingMethodRepository) *ShippingUsecase {
	return &ShippingUsecase{methods: methods}
}

func (u *ShippingUsecase) List(ctx context.Context) ([]model.ShippingMethod, error) {
	items, err := u.methods.List(ctx)
	if err != nil {
		return []model.ShippingMethod{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// Quote は選択中の配送方法の送料を返す。カートが空なら選択に関わらず0。
func (u *ShippingUsecase) Quote(ctx context.Context, methodID int64, itemCount int) (int64, error) {
	if itemCount <= 0 {
		return 0, nil
	}
	if methodID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	m, err := u.methods.FindByID(ctx, methodID)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, NewHTTPError(http.StatusNotFound, "shipping method not found")
	}
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m.Price, nil
}

type ShippingMethodInput struct {
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	Description   string `json:"description"`
	EstimatedDays int64  `json:"estimated_days"`
}

func (u *ShippingUsecase) Create(ctx context.Context, in ShippingMethodInput) (model.ShippingMethod, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.ShippingMethod{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return model.ShippingMethod{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	m, err := u.methods.Create(ctx, model.ShippingMethod{
		Name:          in.Name,
		Price:         in.Price,
		Description:   in.Description,
		EstimatedDays: in.EstimatedDays,
	})
	if err != nil {
		return model.ShippingMethod{}, NewHTTPError(http.StatusInternalServerError, "failed to create shipping method")
	}
	return m, nil
}

func (u *ShippingUsecase) Update(ctx context.Context, id int64, in ShippingMethodInput) (model.ShippingMethod, error) {
	if id <= 0 {
		return model.ShippingMethod{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.ShippingMethod{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return model.ShippingMethod{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	err := u.methods.Update(ctx, model.ShippingMethod{
		ID:            id,
		Name:          in.Name,
		Price:         in.Price,
		Description:   in.Description,
		EstimatedDays: in.EstimatedDays,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.ShippingMethod{}, NewHTTPError(http.StatusNotFound, "shipping method not found")
	}
	if err != nil {
		return model.ShippingMethod{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	m, err := u.methods.FindByID(ctx, id)
	if err != nil {
		return model.ShippingMethod{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

func (u *ShippingUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.methods.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "shipping method not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
