package partial

// Marker is the type of the placeholder sentinel. It carries no payload;
// its only job is to be distinguishable from every ordinary argument value.
type Marker struct{}

// String renders the marker the way a hole reads in a call expression.
func (Marker) String() string { return "_" }

// Placeholder is the well-known placeholder sentinel. Put it in a fixed
// argument sequence to leave that position open for a call-time value.
var Placeholder = Marker{}

// PlaceholderFunc decides which argument values count as placeholders.
// Pass one to MakeFunc or MergeFunc to use a caller-owned sentinel instead
// of the package default.
type PlaceholderFunc func(v any) bool

// IsPlaceholder reports whether v is the package placeholder marker.
// It is the default PlaceholderFunc used by Make and Merge.
func IsPlaceholder(v any) bool {
	_, ok := v.(Marker)
	return ok
}
