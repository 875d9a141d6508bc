package movebind

// JSONOptions bundles options for decoding JSON documents.
type JSONOptions struct {
	// DisallowDuplicateKeys rejects objects that repeat a key instead of
	// keeping the last occurrence.
	DisallowDuplicateKeys bool
	// MaxDepth limits container nesting; 0 means unlimited.
	MaxDepth int
}

// DefaultJSONOptions rejects duplicate keys and caps nesting at 128 levels.
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{DisallowDuplicateKeys: true, MaxDepth: 128}
}
