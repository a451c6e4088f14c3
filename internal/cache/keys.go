package cache

import "strings"

const (
	GlobalKeyPrefix = "aiassess"

	ServiceEvaluation = "evaluation"
	ObjectVerdict     = "verdict"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// VerdictKey is the key of a cached semantic verdict for a request digest.
func VerdictKey(digest string) string {
	return GenerateCacheKey(ServiceEvaluation, ObjectVerdict, digest)
}
