package redis

// KeyPrefixLookups is the prefix for per-space lookup counters.
const KeyPrefixLookups = "harborpark:space:lookups:"

// SpaceLookupKey returns the counter key for a parking space.
func SpaceLookupKey(id string) string {
	return KeyPrefixLookups + id
}
