// SPDX-License-Identifier: MIT

package vector

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
)

// writeComponents appends "[name c0 c1 ...]" to sb. Floats use the shortest
// representation that round-trips in their own width.
func writeComponents[T scalar.Number](sb *strings.Builder, name string, cs []T) {
	sb.WriteByte('[')
	sb.WriteString(name)
	for _, c := range cs {
		sb.WriteByte(' ')
		sb.WriteString(FormatComponent(c))
	}
	sb.WriteByte(']')
}

// FormatComponent renders a single component the way String does.
func FormatComponent[T scalar.Number](c T) string {
	switch x := any(c).(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	// Named kinds (~int32, ~float64, ...) print through float64.
	return strconv.FormatFloat(float64(c), 'g', -1, 64)
}
