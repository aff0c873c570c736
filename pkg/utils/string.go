package utils

import (
	"math/rand"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

var randSource = rand.NewSource(time.Now().UnixNano())
var randGenerator = rand.New(randSource)

// GenerateRandomString returns a random lowercase alphanumeric string,
// used as the suffix of generated upload filenames.
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[randGenerator.Intn(len(charset))]
	}
	return string(b)
}
