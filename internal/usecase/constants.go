package usecase

import "time"

const (
	// SummaryCacheTTL bounds how stale a cached summary may be. Reads
	// tolerate seeing a snapshot one posting behind the latest write,
	// so a short TTL is enough and no invalidation fan-out is needed.
	SummaryCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long HTTP idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
