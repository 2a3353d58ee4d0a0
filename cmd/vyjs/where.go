package main

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/samuraiexx/vyjs/delta"
	"github.com/samuraiexx/vyjs/snap"
)

// filterDelta drops delta entries for which the -where expression is
// false. The expression sees path (string), op (add/modify/delete/
// nested) and depth (int). Dropping a nested entry drops its whole
// subtree; kept nested entries are filtered recursively.
func filterDelta(d *snap.Value, src string) (*snap.Value, error) {
	if d == nil {
		return nil, nil
	}
	prg, err := expr.Compile(src, expr.Env(map[string]any{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return filterLevel(prg, d, snap.Path{}, 0)
}

func filterLevel(prg *vm.Program, d *snap.Value, path snap.Path, depth int) (*snap.Value, error) {
	if d == nil || d.Type != snap.ObjectType {
		return d, nil
	}
	isSeq := delta.IsSequence(d)
	res := map[string]*snap.Value{}
	for _, k := range d.Keys() {
		if isSeq && k == delta.ArrayMarkerKey {
			res[k] = d.Map[k]
			continue
		}
		entry := d.Map[k]
		p := entryPath(path, k, isSeq)
		keep, err := evalWhere(prg, p, delta.Classify(entry), depth)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		if delta.Classify(entry) == delta.OpNested {
			nested, err := filterLevel(prg, entry, p, depth+1)
			if err != nil {
				return nil, err
			}
			if nested == nil {
				continue
			}
			res[k] = nested
			continue
		}
		res[k] = entry
	}
	if len(res) == 0 || (isSeq && len(res) == 1) {
		return nil, nil
	}
	return snap.FromMap(res), nil
}

func entryPath(path snap.Path, key string, isSeq bool) snap.Path {
	if !isSeq {
		return path.Key(key)
	}
	numeric := key
	if len(key) > len(delta.OldIndexPrefix) && key[:len(delta.OldIndexPrefix)] == delta.OldIndexPrefix {
		numeric = key[len(delta.OldIndexPrefix):]
	}
	if idx, err := strconv.Atoi(numeric); err == nil {
		return path.Index(idx)
	}
	return path.Key(key)
}

func evalWhere(prg *vm.Program, path snap.Path, op delta.Op, depth int) (bool, error) {
	out, err := expr.Run(prg, map[string]any{
		"path":  path.String(),
		"op":    op.String(),
		"depth": depth,
	})
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("-where expression returned %T, want bool", out)
	}
	return b, nil
}
