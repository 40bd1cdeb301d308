package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/google/uuid"
)

// PasetoToken verifies v4.public tokens. It issues tokens only when a secret key is configured.
type PasetoToken struct {
	parser    paseto.Parser
	publicKey paseto.V4AsymmetricPublicKey
	secretKey *paseto.V4AsymmetricSecretKey
	ttl       time.Duration
}

func New(conf *config.Auth) (*PasetoToken, error) {
	p := PasetoToken{
		parser: paseto.NewParser(),
		ttl:    conf.TokenTTL,
	}

	if conf.SecretKeyHex != "" {
		secret, err := paseto.NewV4AsymmetricSecretKeyFromHex(conf.SecretKeyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid secret key: %w", err)
		}
		p.secretKey = &secret
		p.publicKey = secret.Public()
	}

	if conf.PublicKeyHex != "" {
		public, err := paseto.NewV4AsymmetricPublicKeyFromHex(conf.PublicKeyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid public key: %w", err)
		}
		p.publicKey = public
	} else if p.secretKey == nil {
		return nil, fmt.Errorf("token service needs a public or a secret key")
	}

	return &p, nil
}

// GenerateKeys returns a new hex encoded key pair.
func GenerateKeys() (publicHex string, secretHex string) {
	secret := paseto.NewV4AsymmetricSecretKey()
	return secret.Public().ExportHex(), secret.ExportHex()
}

func (p *PasetoToken) CreateToken(customerID uuid.UUID) (string, error) {
	if p.secretKey == nil {
		return "", domain.ErrTokenIssuerMissing
	}

	now := time.Now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))
	token.SetSubject(customerID.String())

	return token.V4Sign(*p.secretKey, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Public(p.publicKey, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	subject, err := parsedToken.GetSubject()
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	customerID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &port.TokenPayload{CustomerID: customerID}, nil
}
