package port

import "github.com/google/uuid"

type TokenPayload struct {
	CustomerID uuid.UUID
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(customerID uuid.UUID) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
