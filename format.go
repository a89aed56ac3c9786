package seqkit

import (
	"fmt"
	"strings"
)

// format renders at most FormatLimit elements, so it is safe to call on an infinite sequence.
func format[E any](s Sequence[E]) string {
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for v := range Iter(s) {
		if i == FormatLimit {
			sb.WriteString(" ...")
			break
		}
		if 0 < i {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
		i++
	}
	sb.WriteByte(']')
	return sb.String()
}
