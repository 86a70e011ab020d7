// Package invitecode draws invitation codes from crypto/rand.
package invitecode

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"

	"seguridad/internal/domain/service"

	"github.com/pkg/errors"
)

var ten = big.NewInt(10)

type generator struct{}

// NewGenerator returns a CodeGenerator backed by crypto/rand.
func NewGenerator() service.CodeGenerator {
	return &generator{}
}

// NumericCode returns length uniformly random decimal digits. Leading zeros are kept.
func (g *generator) NumericCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("invalid code length: %d", length)
	}

	var code strings.Builder
	code.Grow(length)
	for range length {
		digit, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "failed to draw random digit")
		}
		code.WriteByte(byte('0' + digit.Int64()))
	}

	return code.String(), nil
}

// HexCode returns the lowercase hex encoding of n random bytes.
func (g *generator) HexCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.Errorf("invalid byte count: %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
