package parser

import "testing"

func TestNormalise(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  FEED  ", want: "feed"},
		{in: "pick-up   LOG!!", want: "pick up log"},
		{in: "I'm cold", want: "i m cold"},
		{in: "feed\tall", want: "feed all"},
		{in: "?!", want: ""},
	}
	for _, tc := range tests {
		if got := normalise(tc.in); got != tc.want {
			t.Fatalf("normalise(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestExactVerbs(t *testing.T) {
	p := New()
	for _, v := range p.Verbs() {
		in := p.Parse(ParseContext{}, string(v))
		if in.Verb != v || in.Clarify != nil {
			t.Fatalf("%q: expected exact match, got %+v", v, in)
		}
	}
}

func TestFeedQuantities(t *testing.T) {
	p := New()
	cases := map[string]int{"feed 3": 3, "feed all": -1, "add a log": 1, "stoke two": 2}
	for line, want := range cases {
		in := p.Parse(ParseContext{}, line)
		if in.Verb != VerbFeed {
			t.Fatalf("%q: expected feed, got %+v", line, in)
		}
		if in.Quantity == nil || in.Quantity.N != want {
			t.Fatalf("%q: expected quantity %d, got %+v", line, want, in.Quantity)
		}
	}
	if !p.Parse(ParseContext{}, "feed everything").Quantity.All() {
		t.Fatalf("expected everything to mean all")
	}
}

func TestTypoStillMatches(t *testing.T) {
	p := New()
	in := p.Parse(ParseContext{}, "ligt")
	if in.Verb != VerbLight {
		t.Fatalf("expected light, got %+v", in)
	}
	if in.Score < 0.6 {
		t.Fatalf("expected decent confidence for a typo, got %.2f", in.Score)
	}
}

func TestAliasesAndKinds(t *testing.T) {
	p := New()
	cases := map[string]Verb{
		"inv":            VerbStatus,
		"hud":            VerbStatus,
		"start the fire": VerbLight,
		"grab":           VerbTake,
		"q":              VerbQuit,
		"scan":           VerbLook,
	}
	for line, want := range cases {
		if got := p.Parse(ParseContext{}, line).Verb; got != want {
			t.Fatalf("%q: expected %q, got %q", line, want, got)
		}
	}
	if VerbStatus.Kind() != KindQuery || VerbFeed.Kind() != KindAction || VerbQuit.Kind() != KindMeta {
		t.Fatalf("unexpected verb kinds")
	}
}

func TestTakeResolvesNearbyLog(t *testing.T) {
	p := New()
	ctx := ParseContext{Nearby: []string{"log", "firepit"}}
	in := p.Parse(ctx, "pick up lo")
	if in.Verb != VerbTake || in.Object != "log" {
		t.Fatalf("expected take log, got %+v", in)
	}
	if in = p.Parse(ctx, "take the log"); in.Object != "log" {
		t.Fatalf("expected filler dropped, got %+v", in)
	}
}

func TestPronounUsesLastObject(t *testing.T) {
	p := New()
	in := p.Parse(ParseContext{Nearby: []string{"log"}, LastObject: "log"}, "take it")
	if in.Clarify != nil || in.Object != "log" {
		t.Fatalf("expected pronoun to resolve to log, got %+v", in)
	}
	in = p.Parse(ParseContext{}, "take it")
	if in.Clarify == nil {
		t.Fatalf("expected a question when nothing was mentioned before")
	}
}

func TestAmbiguousPrefixAsks(t *testing.T) {
	p := New()
	in := p.Parse(ParseContext{}, "st")
	if in.Clarify == nil || len(in.Clarify.Options) != 2 {
		t.Fatalf("expected two options for an ambiguous prefix, got %+v", in.Clarify)
	}
	if in.Clarify.Options[0].Verb == in.Clarify.Options[1].Verb {
		t.Fatalf("expected distinct options, got %+v", in.Clarify.Options)
	}
}

func TestFreeText(t *testing.T) {
	p := New()
	cases := map[string]Verb{
		"how is the fire":         VerbStatus,
		"i'm cold":                VerbLight,
		"could you keep it going": VerbFeed,
		"where am i":              VerbLook,
	}
	for line, want := range cases {
		if got := p.Parse(ParseContext{}, line).Verb; got != want {
			t.Fatalf("%q: expected %q, got %q", line, want, got)
		}
	}
}

func TestUnknownAndEmpty(t *testing.T) {
	p := New()
	in := p.Parse(ParseContext{}, "xyzzy plugh")
	if in.Verb != "" || in.Clarify == nil {
		t.Fatalf("expected an unresolved line, got %+v", in)
	}
	if in := p.Parse(ParseContext{}, "   "); in.Clarify == nil {
		t.Fatalf("expected a prompt for an empty line")
	}
}

func TestIntentString(t *testing.T) {
	in := Intent{Verb: VerbFeed, Quantity: &Quantity{Raw: "2", N: 2}}
	if got := in.String(); got != "feed 2" {
		t.Fatalf("expected %q, got %q", "feed 2", got)
	}
	if got := (Intent{Verb: VerbTake, Object: "log"}).String(); got != "take log" {
		t.Fatalf("expected %q, got %q", "take log", got)
	}
}
