package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

// GenerateDigitCode returns length uniformly random decimal digits read from src.
// Leading zeros are kept, so the result is always exactly length characters.
func GenerateDigitCode(src io.Reader, length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid code length")
	}
	if src == nil {
		src = rand.Reader
	}

	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(src, max)
		if err != nil {
			return "", err
		}
		code[i] = digits[n.Int64()]
	}

	return string(code), nil
}
