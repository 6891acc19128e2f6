package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 12
)

// GenerateID returns a random lowercase identifier used for reconciliation run ids.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
