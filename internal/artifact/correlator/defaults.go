package correlator

const (
	defaultNearWindow = 1000
	defaultMidWindow  = 5000
	defaultMaxWindow  = 50000
	defaultCacheSize  = 4096
)
