package ir

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNodeJSONRoundTrip(t *testing.T) {
	obj := NewObject()
	obj.AddStringToObject("name", "alice")
	obj.AddNumberToObject("age", 30)
	obj.AddItemToObject("xs", FromInts([]int{1, 2}))

	d, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), `"kind":"Object"`) {
		t.Errorf("meta form missing kind tag: %s", d)
	}

	got := &Node{}
	if err := json.Unmarshal(d, got); err != nil {
		t.Fatal(err)
	}
	if !Equal(obj, got, true) {
		t.Errorf("round-tripped tree differs: %s", d)
	}
	// Sibling links must be rebuilt.
	if got.Child == nil || got.Child.Next == nil || got.Child.Next.Prev != got.Child {
		t.Error("sibling back-links not restored")
	}
}
