package common

import (
	"fmt"
	"math/rand"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a record identifier of the form
// prefix_<unix millis>_<7 base36 chars>. The format is part of the
// persisted data contract and must stay stable across releases.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), randBase36(7))
}

func randBase36(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = base36[rand.Intn(len(base36))]
	}
	return string(buf)
}
