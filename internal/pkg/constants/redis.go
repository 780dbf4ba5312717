package constants

// Redis key prefixes
const (
	// KeyRateLimitIP prefixes fixed-window counters, followed by ":{ip}"
	KeyRateLimitIP = "rate:ip"
)
