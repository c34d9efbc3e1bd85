package hashtag

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Technology", "technology"},
		{"#GoLang!", "golang"},
		{"AI-2024", "ai2024"},
		{"", ""},
		{"   ", ""},
		{"---", ""},
		{"日本語", ""},
		{"café", "caf"},
		{"Foo Bar Baz", "foobarbaz"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Technology", "#fyp!", "AI-2024", "日本語mixed42", ""}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestFilter_DropsStoplistShortAndDuplicates(t *testing.T) {
	in := []string{"fyp", "AI", "Technology", "technology", "#Coding!", "viral"}
	got := Filter(in)
	want := []string{"technology", "coding"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(%v) = %v, want %v", in, got, want)
	}
}

func TestFilter_CapsAtMaxQueryTerms(t *testing.T) {
	in := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf"}
	got := Filter(in)
	if len(got) != MaxQueryTerms {
		t.Fatalf("expected %d terms, got %d", MaxQueryTerms, len(got))
	}
	if got[0] != "alpha" || got[4] != "echo" {
		t.Errorf("expected first-occurrence order preserved, got %v", got)
	}
}

func TestFilter_Invariants(t *testing.T) {
	in := []string{
		"fyp", "FYP", "a", "ab", "abc", "ABC", "TikTok", "tiktokdance",
		"machinelearning", "Machine-Learning", "news", "News!", "space travel",
	}
	got := Filter(in)

	if len(got) > MaxQueryTerms {
		t.Errorf("output exceeds cap: %d", len(got))
	}
	seen := map[string]bool{}
	for _, tok := range got {
		if seen[tok] {
			t.Errorf("duplicate token %q", tok)
		}
		seen[tok] = true
		if len(tok) < MinTokenLen {
			t.Errorf("token %q shorter than %d", tok, MinTokenLen)
		}
		if IsStop(tok) {
			t.Errorf("stoplist token %q in output", tok)
		}
		if Normalize(tok) != tok {
			t.Errorf("token %q is not normalized", tok)
		}
	}
}

func TestFilter_EmptyOutputIsLegitimate(t *testing.T) {
	got := Filter([]string{"fyp", "ab", "", "viral"})
	if len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}
