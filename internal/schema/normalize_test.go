package schema

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"remote, ai, , startup", []string{"remote", "ai", "startup"}},
		{"", []string{}},
		{" , , ", []string{}},
		{"solo", []string{"solo"}},
		{"a,a, b ,a", []string{"a", "a", "b", "a"}}, // duplicates kept, order kept
	}
	for _, tc := range cases {
		if got := SplitList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// Joining a normalized list and splitting again must be a fixed point.
func TestSplitListRoundTrip(t *testing.T) {
	inputs := []string{
		"remote, ai, , startup",
		"  x ,y,  z  ",
		"dup,dup, dup",
		"",
	}
	for _, in := range inputs {
		once := SplitList(in)
		again := SplitList(strings.Join(once, ","))
		if !reflect.DeepEqual(once, again) {
			t.Errorf("round trip of %q: %v != %v", in, once, again)
		}
	}
}

func TestCheckURL(t *testing.T) {
	if err := checkURL("website", ""); err != nil {
		t.Errorf("empty URL rejected: %v", err)
	}
	if err := checkURL("website", "https://acme.example/careers"); err != nil {
		t.Errorf("valid URL rejected: %v", err)
	}
	for _, bad := range []string{"not a url", "/careers", "acme.example"} {
		if err := checkURL("website", bad); err == nil {
			t.Errorf("checkURL(%q) = nil, want error", bad)
		}
	}
}
