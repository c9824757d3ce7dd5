package application

import (
	"time"

	"github.com/bnema/storefront-cli/internal/ports"
)

const (
	waitFor = 5 * time.Second
	tick    = 20 * time.Millisecond
)

type fixedClock struct {
	now time.Time
}

var _ ports.Clock = fixedClock{}

func (c fixedClock) Now() time.Time {
	return c.now
}
