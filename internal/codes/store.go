package codes

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"
)

// TTL de los códigos de verificación y recuperación.
const TTL = 15 * time.Minute

var (
	ErrNoCode  = errors.New("no pending code")
	ErrExpired = errors.New("code expired")
	ErrBadCode = errors.New("wrong code")
)

// Store guarda códigos de un solo uso por email. Consume elimina el
// código en cuanto la verificación es exitosa o el código expiró; un
// código incorrecto no gasta el pendiente.
type Store interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	Consume(ctx context.Context, email, code string) error
}

// Generate produce un código numérico de 6 dígitos.
func Generate() string {
	const digits = "0123456789"
	out := make([]byte, 6)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			// crypto/rand solo falla si el sistema no tiene entropía
			out[i] = '0'
			continue
		}
		out[i] = digits[n.Int64()]
	}
	return string(out)
}
