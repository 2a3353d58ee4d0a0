package delta

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samuraiexx/vyjs/snap"
)

// PatchOp is one RFC 6902 operation.
type PatchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ToJSONPatch exports a portable delta as an RFC 6902 JSON Patch.
// Applying the result to the old snapshot's JSON document yields the
// new snapshot. Sequence deletions are emitted at descending old
// indices, then additions and modifications at ascending new indices,
// so the operations compose under sequential application.
func ToJSONPatch(d *snap.Value) ([]byte, error) {
	ops, err := patchOps(d, "")
	if err != nil {
		return nil, err
	}
	return json.Marshal(ops)
}

func patchOps(d *snap.Value, prefix string) ([]PatchOp, error) {
	if d == nil {
		return []PatchOp{}, nil
	}
	if d.Type != snap.ObjectType {
		return nil, fmt.Errorf("%w: delta root must be an object, got %s", ErrInvalidShape, d.Type)
	}
	if IsSequence(d) {
		return sequenceOps(d, prefix)
	}
	return mappingOps(d, prefix)
}

func mappingOps(d *snap.Value, prefix string) ([]PatchOp, error) {
	ops := []PatchOp{}
	for _, k := range d.Keys() {
		entry := d.Map[k]
		path := prefix + "/" + escapePointer(k)
		switch Classify(entry) {
		case OpDelete:
			ops = append(ops, PatchOp{Op: "remove", Path: path})
		case OpAdd:
			op, err := valueOp("add", path, entry.Values[0])
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		case OpModify:
			op, err := valueOp("replace", path, entry.Values[1])
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		case OpNested:
			nested, err := patchOps(entry, path)
			if err != nil {
				return nil, err
			}
			ops = append(ops, nested...)
		default:
			return nil, fmt.Errorf("%w: key %q", ErrInvalidShape, k)
		}
	}
	return ops, nil
}

func sequenceOps(d *snap.Value, prefix string) ([]PatchOp, error) {
	ops := []PatchOp{}
	for _, idx := range Deletions(d) {
		ops = append(ops, PatchOp{Op: "remove", Path: prefix + "/" + strconv.Itoa(idx)})
	}
	for _, e := range Entries(d) {
		if e.Index < 0 {
			return nil, fmt.Errorf("%w: sequence key %q", ErrInvalidShape, e.Key)
		}
		path := prefix + "/" + strconv.Itoa(e.Index)
		switch Classify(e.Entry) {
		case OpAdd:
			op, err := valueOp("add", path, e.Entry.Values[0])
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		case OpModify:
			op, err := valueOp("replace", path, e.Entry.Values[1])
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		case OpNested:
			nested, err := patchOps(e.Entry, path)
			if err != nil {
				return nil, err
			}
			ops = append(ops, nested...)
		default:
			return nil, fmt.Errorf("%w: sequence key %q", ErrInvalidShape, e.Key)
		}
	}
	return ops, nil
}

func valueOp(op, path string, v *snap.Value) (PatchOp, error) {
	raw, err := json.Marshal(v.ToAny())
	if err != nil {
		return PatchOp{}, err
	}
	return PatchOp{Op: op, Path: path, Value: raw}, nil
}

func escapePointer(k string) string {
	k = strings.ReplaceAll(k, "~", "~0")
	return strings.ReplaceAll(k, "/", "~1")
}
