package delta

import (
	"encoding/json"
	"testing"

	"github.com/samuraiexx/vyjs/snap"
)

func mustParse(t *testing.T, src string) *snap.Value {
	t.Helper()
	v, err := snap.ParseJSON([]byte(src))
	if err != nil {
		t.Fatalf("ParseJSON(%q): %v", src, err)
	}
	return v
}

type makeTest struct {
	old string
	new string
	// want is the expected delta in JSON form, "" for nil
	want string
}

var makeTests = []makeTest{
	{old: `{"a": 1}`, new: `{"a": 1}`, want: ``},
	{old: `1`, new: `2`, want: `[1, 2]`},
	{old: `"x"`, new: `"y"`, want: `["x", "y"]`},
	{old: `{"a": 1}`, new: `{"a": 2}`, want: `{"a": [1, 2]}`},
	{old: `{}`, new: `{"a": 1}`, want: `{"a": [1]}`},
	{old: `{"a": 1}`, new: `{}`, want: `{"a": [1, 0, 0]}`},
	{old: `{"a": 1}`, new: `[1]`, want: `[{"a": 1}, [1]]`},
	{
		old:  `{"a": {"b": 1, "c": 2}}`,
		new:  `{"a": {"b": 9, "c": 2}}`,
		want: `{"a": {"b": [1, 9]}}`,
	},
	{
		old:  `["apple", "banana", "cherry"]`,
		new:  `["apple", "blueberry", "cherry"]`,
		want: `{"_t": "a", "1": ["banana", "blueberry"]}`,
	},
	{
		old:  `[1, 2, 3]`,
		new:  `[2, 3]`,
		want: `{"_t": "a", "_0": [1, 0, 0]}`,
	},
	{
		old:  `[2, 3]`,
		new:  `[1, 2, 3]`,
		want: `{"_t": "a", "0": [1]}`,
	},
	{
		old:  `[1, 2, 3, 4]`,
		new:  `[2, 3, 5]`,
		want: `{"_t": "a", "_0": [1, 0, 0], "2": [4, 5]}`,
	},
	{
		old:  `[{"id": 1}, {"id": 2}]`,
		new:  `[{"id": 1}, {"id": 3}]`,
		want: `{"_t": "a", "1": {"id": [2, 3]}}`,
	},
}

func TestMake(t *testing.T) {
	for _, tst := range makeTests {
		got := Make(mustParse(t, tst.old), mustParse(t, tst.new))
		if tst.want == "" {
			if got != nil {
				t.Errorf("Make(%s, %s) = %v, want nil", tst.old, tst.new, got.ToAny())
			}
			continue
		}
		if !snap.Equal(got, mustParse(t, tst.want)) {
			t.Errorf("Make(%s, %s) = %v, want %s", tst.old, tst.new, got.ToAny(), tst.want)
		}
	}
}

func TestMakeSurvivesSerialization(t *testing.T) {
	d := Make(
		mustParse(t, `{"xs": [1, 2, 3, 4], "msg": "hi"}`),
		mustParse(t, `{"xs": [2, 3, 5], "msg": "ho"}`),
	)
	raw, err := json.Marshal(d.ToAny())
	if err != nil {
		t.Fatal(err)
	}
	back, err := snap.ParseJSON(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !snap.Equal(d, back) {
		t.Fatalf("delta changed across serialization: %s", raw)
	}
}

type classifyTest struct {
	entry string
	op    Op
}

var classifyTests = []classifyTest{
	{entry: `[1]`, op: OpAdd},
	{entry: `[1, 2]`, op: OpModify},
	{entry: `[1, 0, 0]`, op: OpDelete},
	{entry: `["x", 0, 0]`, op: OpDelete},
	{entry: `[1, 0, 1]`, op: OpNone},
	{entry: `[1, 2, 3, 4]`, op: OpNone},
	{entry: `[]`, op: OpNone},
	{entry: `{"a": [1]}`, op: OpNested},
	{entry: `{"_t": "a"}`, op: OpNested},
	{entry: `1`, op: OpNone},
	{entry: `"x"`, op: OpNone},
	{entry: `null`, op: OpNone},
}

func TestClassify(t *testing.T) {
	for _, tst := range classifyTests {
		if got := Classify(mustParse(t, tst.entry)); got != tst.op {
			t.Errorf("Classify(%s) = %s, want %s", tst.entry, got, tst.op)
		}
	}
	if got := Classify(nil); got != OpNone {
		t.Errorf("Classify(nil) = %s, want none", got)
	}
}

func TestIsSequence(t *testing.T) {
	for _, tst := range []struct {
		src string
		is  bool
	}{
		{src: `{"_t": "a"}`, is: true},
		{src: `{"_t": "a", "0": ["x"]}`, is: true},
		{src: `{"_t": "b"}`, is: false},
		{src: `{"_t": 1}`, is: false},
		{src: `{"0": ["x"]}`, is: false},
		// a sequence of one-character strings still needs the marker
		{src: `{"0": ["a"], "1": ["b"]}`, is: false},
		{src: `[1]`, is: false},
		{src: `"a"`, is: false},
	} {
		if got := IsSequence(mustParse(t, tst.src)); got != tst.is {
			t.Errorf("IsSequence(%s) = %v, want %v", tst.src, got, tst.is)
		}
	}
	if IsSequence(nil) {
		t.Error("IsSequence(nil) = true")
	}
}

func TestDeletionsDescending(t *testing.T) {
	d := mustParse(t, `{
		"_t": "a",
		"_2": [3, 0, 0],
		"_10": [11, 0, 0],
		"_0": [1, 0, 0],
		"_x": [0, 0, 0],
		"4": [5]
	}`)
	got := Deletions(d)
	want := []int{10, 2, 0}
	if len(got) != len(want) {
		t.Fatalf("Deletions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Deletions = %v, want %v", got, want)
		}
	}
}

func TestEntriesAscending(t *testing.T) {
	d := mustParse(t, `{
		"_t": "a",
		"10": ["k"],
		"2": ["c", "z"],
		"0": {"n": [1]},
		"_3": [4, 0, 0]
	}`)
	es := Entries(d)
	if len(es) != 3 {
		t.Fatalf("Entries = %v", es)
	}
	wantIdx := []int{0, 2, 10}
	wantOp := []Op{OpNested, OpModify, OpAdd}
	for i := range es {
		if es[i].Index != wantIdx[i] {
			t.Errorf("entry %d index = %d, want %d", i, es[i].Index, wantIdx[i])
		}
		if got := Classify(es[i].Entry); got != wantOp[i] {
			t.Errorf("entry %d op = %s, want %s", i, got, wantOp[i])
		}
	}
}

func TestEntriesNonNumericKey(t *testing.T) {
	d := mustParse(t, `{"_t": "a", "oops": [1]}`)
	es := Entries(d)
	if len(es) != 1 || es[0].Index != -1 || es[0].Key != "oops" {
		t.Fatalf("Entries = %v", es)
	}
}
