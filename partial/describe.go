package partial

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// String renders the delayed call as a pseudo call expression, e.g.
// "partial(partialfn.lifted, 1, _, by=cmp)". Keyword arguments are sorted
// by name so the rendering is deterministic. Rendering is diagnostics only
// and never affects Invoke semantics.
func (c *Call) String() string {
	var buf bytes.Buffer
	buf.WriteString("partial(")
	buf.WriteString(describeTarget(c.target))
	for _, tok := range c.fixedArgs {
		buf.WriteString(", ")
		fmt.Fprintf(&buf, "%v", tok)
	}
	for _, k := range slices.Sorted(maps.Keys(c.fixedKwArgs)) {
		buf.WriteString(", ")
		fmt.Fprintf(&buf, "%s=%v", k, c.fixedKwArgs[k])
	}
	buf.WriteByte(')')
	return buf.String()
}

// Fingerprint hashes the rendered form of the delayed call. Two calls with
// the same rendering share a fingerprint; it is meant as a stable
// correlation key for logs, not as an identity or equality check.
func (c *Call) Fingerprint() uint64 {
	return xxhash.Sum64String(c.String())
}

func describeTarget(target Invocable) string {
	if s, ok := target.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", target)
}
