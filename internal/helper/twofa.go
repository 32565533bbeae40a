package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

type CodeGenerator struct {
	TTL time.Duration
}

func NewCodeGenerator(ttlSeconds int) CodeGenerator {
	return CodeGenerator{TTL: time.Duration(ttlSeconds) * time.Second}
}

// Generate draws a code uniformly from 100000-999999 and pairs it with an
// absolute expiry.
func (g CodeGenerator) Generate() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", time.Time{}, err
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)
	return code, time.Now().Add(g.TTL), nil
}
