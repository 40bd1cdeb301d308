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

const productsPath = "/api/v1/products/"

type ProductClient struct {
	caller *resilience.Caller[*domain.Product]
}

func NewProductClient(conf *config.Remote, cache port.Cache, log *zap.Logger) *ProductClient {
	c := newHTTPClient(conf, log)
	fetch := func(ctx context.Context, id string) (*domain.Product, error) {
		p, err := get[dto.ProductDTO](ctx, c, "product", productsPath, id)
		if err != nil {
			return nil, err
		}
		return p.ToDomain(), nil
	}

	return &ProductClient{
		caller: resilience.NewCaller[*domain.Product]("Product", "ProductByUuid", fetch,
			cache, resilience.PolicyFromConfig(conf), log),
	}
}

func (pc *ProductClient) LookupProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return pc.caller.Call(ctx, id.String())
}
