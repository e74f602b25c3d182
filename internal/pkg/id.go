package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const gameIDLimit = 100000000

// GenerateGameID - generates an eight digit identifier for a game.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(gameIDLimit))
	if err != nil {
		return "", fmt.Errorf("could not generate game id: %w", err)
	}

	return fmt.Sprintf("%08d", n.Int64()), nil
}
