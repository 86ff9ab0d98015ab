package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== TOKEN ====================

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== ORDER NUMBER ====================

func GenerateOrderNumber() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: ORD-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("ORD-%s-%s-%s", datePart, timePart, randomPart)
}
