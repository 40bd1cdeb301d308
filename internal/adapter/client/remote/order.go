package remote

import (
	"context"

	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/adapter/dto"
	"github.com/gad/ecommerce-msvc/internal/adapter/resilience"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ordersPath = "/api/v1/orders/"

type OrderClient struct {
	caller *resilience.Caller[*domain.Order]
}

func NewOrderClient(conf *config.Remote, cache port.Cache, log *zap.Logger) *OrderClient {
	c := newHTTPClient(conf, log)
	fetch := func(ctx context.Context, id string) (*domain.Order, error) {
		o, err := get[dto.OrderDTO](ctx, c, "order", ordersPath, id)
		if err != nil {
			return nil, err
		}
		return o.ToDomain(), nil
	}

	return &OrderClient{
		caller: resilience.NewCaller[*domain.Order]("Order", "OrderByUuid", fetch,
			cache, resilience.PolicyFromConfig(conf), log),
	}
}

func (oc *OrderClient) LookupOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return oc.caller.Call(ctx, id.String())
}
