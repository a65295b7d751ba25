package repository

import (
	"context"

	"metahair/internal/domain/model"
)

type ShippingMethodRepository interface {
	List(ctx context.Context) ([]model.ShippingMethod, error)
	FindByID(ctx context.Context, id int64) (model.ShippingMethod, error)
	FindByName(ctx context.Context, name string) (model.ShippingMethod, error)

	Create(ctx context.Context, m model.ShippingMethod) (model.ShippingMethod, error)
	Update(ctx context.Context, m model.ShippingMethod) error
	Delete(ctx context.Context, id int64) error
}
