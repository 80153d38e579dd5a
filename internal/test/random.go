package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided
// bounds. When maxLen equals minLen the string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomOrder builds a pending order with plausible field values.
func RandomOrder(viewerID string) model.Order {
	return model.Order{
		ID:             RandomASCIIString(16, 16),
		ViewerID:       viewerID,
		ViewerEmail:    RandomASCIIString(6, 10) + "@example.com",
		ViewerName:     RandomASCIIString(4, 12),
		FirstName:      RandomASCIIString(3, 10),
		LastName:       RandomASCIIString(3, 10),
		Gender:         model.GenderMale,
		Phone:          "+998901.23.45.67",
		TelegramHandle: "@" + RandomASCIIString(4, 10),
		DesignType:     model.DesignTypes[randomIntn(len(model.DesignTypes))],
		Game:           model.Games[randomIntn(len(model.Games))],
		TotalPrice:     100000,
		Status:         model.OrderStatusPending,
		CreatedAt:      time.Now().UnixMilli(),
	}
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
