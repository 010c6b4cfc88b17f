package stage

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	tb := NewTable()
	for _, k := range []string{"b", "a", "b", "c", "b"} {
		tb.Add(k)
	}
	if tb.Count("b") != 3 || tb.Count("a") != 1 || tb.Count("zzz") != 0 {
		t.Fatalf("unexpected counts: b=%d a=%d", tb.Count("b"), tb.Count("a"))
	}
	if tb.size() != 3 || tb.total() != 5 {
		t.Fatalf("unexpected len/total: %d/%d", tb.size(), tb.total())
	}
	if got := strings.Join(tb.Keys(), ","); got != "b,a,c" {
		t.Fatalf("unexpected first-seen order: %s", got)
	}
}

func TestAggregate_DefaultKey(t *testing.T) {
	tb, err := Aggregate(NewRecordReader(strings.NewReader("a\tb\tc\na\tx\ty\n"), '\t'), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tb.size() != 1 || tb.Count("a") != 2 {
		t.Fatalf("unexpected table: %v", tb.Keys())
	}
}

func TestAggregate_CustomKey(t *testing.T) {
	tb, err := Aggregate(NewRecordReader(strings.NewReader("1,2\n1,3\n4,5\n"), ','), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, k := range []string{"2", "3", "5"} {
		if tb.Count(k) != 1 {
			t.Fatalf("count(%s) = %d", k, tb.Count(k))
		}
	}
	if tb.total() != 3 {
		t.Fatalf("total = %d", tb.total())
	}
}

func TestAggregate_MissingField(t *testing.T) {
	_, err := Aggregate(NewRecordReader(strings.NewReader("a\n"), '\t'), 2)
	if !IsKind(err, KindMissingField) {
		t.Fatalf("expected missing field, got %v", err)
	}
	want := "missing field: aggregate: line 1: field 2 requested but record has 1"
	if err.Error() != want {
		t.Fatalf("unexpected message\nwant: %s\n got: %s", want, err.Error())
	}
}

func TestAggregate_TotalMatchesRecordCount(t *testing.T) {
	var b strings.Builder
	n := 0
	for i := 0; i < 50; i++ {
		for _, k := range []string{"x", "y10", "y9", "z"} {
			if (i+len(k))%3 == 0 {
				continue
			}
			b.WriteString(k + ",v\n")
			n++
		}
	}
	tb, err := Aggregate(NewRecordReader(strings.NewReader(b.String()), ','), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tb.total() != n {
		t.Fatalf("total %d != records %d", tb.total(), n)
	}
}
