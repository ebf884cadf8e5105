package partial

// Merge combines a fixed argument sequence with call-time arguments using
// the package placeholder marker. See MergeFunc for the merge rule.
func Merge(fixed, supplied []any) []any {
	return MergeFunc(fixed, supplied, IsPlaceholder)
}

// MergeFunc walks fixed left to right, emitting ordinary values unchanged
// and filling each placeholder with the next unconsumed element of supplied.
// Leftover supplied values are appended at the end. A placeholder reached
// after supplied is exhausted is emitted as a literal value.
//
// MergeFunc is total: every combination of lengths, including empty slices
// on either side, yields a result without error. When fixed contains no
// placeholders the result is plain concatenation. The returned slice is
// freshly allocated and shares no header with either input.
func MergeFunc(fixed, supplied []any, isPlaceholder PlaceholderFunc) []any {
	merged := make([]any, 0, len(fixed)+len(supplied))
	next := 0
	for _, tok := range fixed {
		if next < len(supplied) && isPlaceholder(tok) {
			merged = append(merged, supplied[next])
			next++
			continue
		}
		merged = append(merged, tok)
	}
	return append(merged, supplied[next:]...)
}
