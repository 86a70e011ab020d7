package apns

import (
	"crypto/ecdsa"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// providerToken signs and caches the ES256 bearer token APNs expects.
type providerToken struct {
	teamID string
	keyID  string
	key    *ecdsa.PrivateKey
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	bearer   string
	issuedAt time.Time
}

func newProviderToken(teamID, keyID, authKeyPEM string, ttl time.Duration) (*providerToken, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(authKeyPEM))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse APNs auth key")
	}

	return &providerToken{
		teamID: teamID,
		keyID:  keyID,
		key:    key,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Bearer returns the cached token, signing a new one once ttl has elapsed.
func (p *providerToken) Bearer() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.bearer != "" && now.Sub(p.issuedAt) < p.ttl {
		return p.bearer, nil
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"iss": p.teamID,
		"iat": now.Unix(),
	})
	token.Header["kid"] = p.keyID

	signed, err := token.SignedString(p.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign APNs provider token")
	}

	p.bearer = signed
	p.issuedAt = now

	return signed, nil
}
