package domain

import "time"

const (
	defaultDistanceThreshold = 0.2
	defaultTTL               = 24 * time.Hour
	defaultStoreTimeout      = 2 * time.Second
	defaultEmbedTimeout      = 5 * time.Second
	defaultSearchCandidates  = 4
	defaultTieEpsilon        = 1e-6
)

// CacheSettings tunes the cache facade.
type CacheSettings struct {
	// DistanceThreshold is the largest cosine distance accepted as a semantic hit.
	DistanceThreshold float64
	// DefaultTTL applies when Set is called without WithTTL. Zero means permanent.
	DefaultTTL time.Duration
	// StoreTimeout bounds every exact-store, index and counter call.
	StoreTimeout time.Duration
	// EmbedTimeout bounds every embedding call.
	EmbedTimeout time.Duration
	// SearchCandidates is the k passed to SearchNearest so equal-distance ties can be broken.
	SearchCandidates int
	// TieEpsilon is the distance delta under which two candidates are considered tied.
	TieEpsilon float64
	// Clock stamps entries and fixes their absolute expiry. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultCacheSettings returns the settings used when none are configured.
func DefaultCacheSettings() CacheSettings {
	return CacheSettings{
		DistanceThreshold: defaultDistanceThreshold,
		DefaultTTL:        defaultTTL,
		StoreTimeout:      defaultStoreTimeout,
		EmbedTimeout:      defaultEmbedTimeout,
		SearchCandidates:  defaultSearchCandidates,
		TieEpsilon:        defaultTieEpsilon,
		Clock:             time.Now,
	}
}

// withDefaults fills zero-valued fields. DefaultTTL and DistanceThreshold
// keep their zero values because both are meaningful.
func (s CacheSettings) withDefaults() CacheSettings {
	if s.StoreTimeout <= 0 {
		s.StoreTimeout = defaultStoreTimeout
	}
	if s.EmbedTimeout <= 0 {
		s.EmbedTimeout = defaultEmbedTimeout
	}
	if s.SearchCandidates <= 0 {
		s.SearchCandidates = defaultSearchCandidates
	}
	if s.TieEpsilon <= 0 {
		s.TieEpsilon = defaultTieEpsilon
	}
	if s.DefaultTTL < 0 {
		s.DefaultTTL = 0
	}
	if s.Clock == nil {
		s.Clock = time.Now
	}
	return s
}

type setOptions struct {
	ttl time.Duration
	tag string
}

// SetOption customizes a single Set call.
type SetOption func(*setOptions)

// WithTTL overrides the default TTL. Zero stores the entry permanently.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) {
		o.ttl = ttl
	}
}

// WithTag attaches a classification label to the entry.
func WithTag(tag string) SetOption {
	return func(o *setOptions) {
		o.tag = tag
	}
}
