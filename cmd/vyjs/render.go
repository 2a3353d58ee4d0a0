package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/samuraiexx/vyjs/delta"
	"github.com/samuraiexx/vyjs/snap"
)

// renderDelta prints a human-readable delta: additions green,
// deletions red, modifications yellow, nested entries indented.
func renderDelta(w io.Writer, d *snap.Value, indent int) {
	if d == nil || d.Type != snap.ObjectType {
		return
	}
	pad := strings.Repeat("  ", indent)
	isSeq := delta.IsSequence(d)
	for _, k := range d.Keys() {
		if isSeq && k == delta.ArrayMarkerKey {
			continue
		}
		entry := d.Map[k]
		label := renderKey(k, isSeq)
		switch delta.Classify(entry) {
		case delta.OpAdd:
			fmt.Fprintf(w, "%s%s %s: %s\n", pad, color.GreenString("+"), label, compact(entry.Values[0]))
		case delta.OpDelete:
			fmt.Fprintf(w, "%s%s %s: %s\n", pad, color.RedString("-"), label, compact(entry.Values[0]))
		case delta.OpModify:
			fmt.Fprintf(w, "%s%s %s: %s -> %s\n", pad, color.YellowString("~"), label,
				compact(entry.Values[0]), compact(entry.Values[1]))
		case delta.OpNested:
			fmt.Fprintf(w, "%s%s:\n", pad, label)
			renderDelta(w, entry, indent+1)
		default:
			fmt.Fprintf(w, "%s%s %s\n", pad, color.YellowString("?"), label)
		}
	}
}

func renderKey(k string, isSeq bool) string {
	if !isSeq {
		return k
	}
	if strings.HasPrefix(k, delta.OldIndexPrefix) {
		return "[" + k[len(delta.OldIndexPrefix):] + "]"
	}
	return "[" + k + "]"
}

func compact(v *snap.Value) string {
	out, err := json.Marshal(v.ToAny())
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
