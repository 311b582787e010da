package cache

import (
	"fmt"
	"sort"
	"strings"
)

// Key derives a deterministic cache key from a logical scope and its
// parameters. Parameter order never matters; callers are expected to normalize
// absent optionals to explicit sentinels ("false", "0", "") before calling so
// that semantically identical requests land on the same key. Values of any
// type are stringified, so key construction never fails.
func Key(scope string, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(scope)
	for _, k := range keys {
		fmt.Fprintf(&b, ":%s=%v", k, params[k])
	}
	return b.String()
}
