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

const orderDetailsPath = "/api/v1/order-details/"

type LineItemClient struct {
	caller *resilience.Caller[*domain.LineItemView]
}

func NewLineItemClient(conf *config.Remote, cache port.Cache, log *zap.Logger) *LineItemClient {
	c := newHTTPClient(conf, log)
	fetch := func(ctx context.Context, id string) (*domain.LineItemView, error) {
		li, err := get[dto.LineItemDTO](ctx, c, "order detail", orderDetailsPath, id)
		if err != nil {
			return nil, err
		}
		return li.ToDomain(), nil
	}

	return &LineItemClient{
		caller: resilience.NewCaller[*domain.LineItemView]("Order Detail", "OrderDetailByUuid", fetch,
			cache, resilience.PolicyFromConfig(conf), log),
	}
}

func (lc *LineItemClient) LookupLineItem(ctx context.Context, id uuid.UUID) (*domain.LineItemView, error) {
	return lc.caller.Call(ctx, id.String())
}
