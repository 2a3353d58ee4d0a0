package delta

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
)

type jsonPatchTest struct {
	old string
	new string
}

var jsonPatchTests = []jsonPatchTest{
	{old: `{"a": 1}`, new: `{"a": 2}`},
	{old: `{}`, new: `{"a": {"b": [1, 2]}}`},
	{old: `{"a": 1, "b": 2}`, new: `{"b": 2}`},
	{old: `{"a": {"b": {"c": 1}}}`, new: `{"a": {"b": {"c": 2, "d": 3}}}`},
	{old: `{"xs": [1, 2, 3, 4]}`, new: `{"xs": [2, 3, 5]}`},
	{old: `{"xs": ["apple", "banana", "cherry"]}`, new: `{"xs": ["apple", "blueberry", "cherry"]}`},
	{old: `{"xs": [{"id": 1}, {"id": 2}]}`, new: `{"xs": [{"id": 1}, {"id": 3}, {"id": 4}]}`},
	{old: `{"a/b": 1, "c~d": 2}`, new: `{"a/b": 9, "c~d": 2}`},
	{old: `{"msg": "hello"}`, new: `{"msg": "world"}`},
}

func TestToJSONPatchApplies(t *testing.T) {
	for _, tst := range jsonPatchTests {
		d := Make(mustParse(t, tst.old), mustParse(t, tst.new))
		raw, err := ToJSONPatch(d)
		if err != nil {
			t.Fatalf("ToJSONPatch(%s -> %s): %v", tst.old, tst.new, err)
		}
		p, err := jsonpatch.DecodePatch(raw)
		if err != nil {
			t.Fatalf("DecodePatch(%s): %v", raw, err)
		}
		got, err := p.Apply([]byte(tst.old))
		if err != nil {
			t.Fatalf("apply %s to %s: %v", raw, tst.old, err)
		}
		if !jsonpatch.Equal(got, []byte(tst.new)) {
			t.Errorf("patch %s applied to %s gave %s, want %s", raw, tst.old, got, tst.new)
		}
	}
}

func TestToJSONPatchNilDelta(t *testing.T) {
	raw, err := ToJSONPatch(nil)
	if err != nil {
		t.Fatal(err)
	}
	var ops []PatchOp
	if err := json.Unmarshal(raw, &ops); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	if len(ops) != 0 {
		t.Fatalf("nil delta produced ops: %s", raw)
	}
}

func TestToJSONPatchOrdering(t *testing.T) {
	d := Make(mustParse(t, `[1, 2, 3, 4]`), mustParse(t, `[2, 3, 5]`))
	raw, err := ToJSONPatch(d)
	if err != nil {
		t.Fatal(err)
	}
	var ops []PatchOp
	if err := json.Unmarshal(raw, &ops); err != nil {
		t.Fatal(err)
	}
	// removals at descending old indices come before index entries
	if len(ops) != 2 {
		t.Fatalf("ops = %s", raw)
	}
	if ops[0].Op != "remove" || ops[0].Path != "/0" {
		t.Errorf("ops[0] = %+v", ops[0])
	}
	if ops[1].Op != "replace" || ops[1].Path != "/2" {
		t.Errorf("ops[1] = %+v", ops[1])
	}
}

func TestToJSONPatchRejectsMalformed(t *testing.T) {
	for _, src := range []string{
		`[1, 2]`,
		`{"a": [1, 2, 3, 4]}`,
		`{"_t": "a", "oops": [1]}`,
	} {
		if _, err := ToJSONPatch(mustParse(t, src)); err == nil {
			t.Errorf("ToJSONPatch(%s): expected error", src)
		}
	}
}
