package chronofold

import (
	"fmt"
	"strings"
)

// String renders the chronofold's current visible sequence by concatenating
// every live element in causal order: a rune element is written as its
// character, any other value as its fmt.Sprint. This mirrors
// original_source/src/fmt.rs's Display impl.
func (c *Chronofold[A, T]) String() string {
	var b strings.Builder
	it := c.Iter()
	for it.Next() {
		v := any(it.Value().Value)
		if r, ok := v.(rune); ok {
			b.WriteRune(r)
		} else {
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// FormattedLog renders a debug table of the log, one row per entry: its log
// index, reconstructed timestamp, change, and tombstone state. Grounded on
// original_source/src/debug.rs and the teacher's PrintTable convention for
// dumping a causal tree for inspection.
func (c *Chronofold[A, T]) FormattedLog() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-16s %-10s %s\n", "index", "timestamp", "change", "tombstone")
	for i := range c.log {
		idx := LogIndex(i)
		ts, _ := c.timestamp(idx)
		fmt.Fprintf(&b, "%-6d %-16s %-10s %v\n", idx, ts.String(), c.log[i].String(), c.tombstone[i])
	}
	return b.String()
}
