package rank

import "testing"

func TestHighAuthorityBand(t *testing.T) {
	for _, d := range HighAuthorityDomains() {
		s := Score(d)
		if s < 60 || s > 95 {
			t.Errorf("Score(%q) = %d, want within [60,95]", d, s)
		}
	}
}

func TestLowAuthorityBand(t *testing.T) {
	for _, d := range LowAuthorityDomains() {
		s := Score(d)
		if s < 15 || s > 50 {
			t.Errorf("Score(%q) = %d, want within [15,50]", d, s)
		}
	}
}

func TestTLDFallback(t *testing.T) {
	cases := []struct {
		domain string
		want   int
	}{
		{"agency.example.gov", 85},
		{"school.example.edu", 80},
		{"base.example.mil", 80},
		{"treaty.example.int", 75},
		{"charity.example.org", 65},
		{"shop.example.com", 60},
		{"host.example.net", 60},
		{"site.example.info", 50},
		{"site.example.biz", 45},
		{"app.example.io", 55},
	}
	for _, c := range cases {
		if got := Score(c.domain); got != c.want {
			t.Errorf("Score(%q) = %d, want %d", c.domain, got, c.want)
		}
	}
}

func TestDefaultScore(t *testing.T) {
	for _, d := range []string{"something.xyz", "no-tld", ""} {
		if got := Score(d); got != 50 {
			t.Errorf("Score(%q) = %d, want 50", d, got)
		}
	}
}

func TestTotalAndDeterministic(t *testing.T) {
	inputs := []string{
		"", " ", "UPPER.GOV", "www.reuters.com", "http://leaked",
		"\x00\xff", "日本語.example", "a.b.c.d.e.f.gov",
	}
	for _, in := range inputs {
		first := Score(in)
		for i := 0; i < 3; i++ {
			if got := Score(in); got != first {
				t.Fatalf("Score(%q) not deterministic: %d then %d", in, first, got)
			}
		}
		if first < 0 || first > 100 {
			t.Errorf("Score(%q) = %d, out of range", in, first)
		}
	}
}

func TestCuratedExactMatch(t *testing.T) {
	if got := Score("reuters.com"); got != 95 {
		t.Errorf("Score(reuters.com) = %d, want 95", got)
	}
	if got := Score("www.reuters.com"); got != 95 {
		t.Errorf("Score(www.reuters.com) = %d, want 95 (www stripped)", got)
	}
	if got := Score("infowars.com"); got != 15 {
		t.Errorf("Score(infowars.com) = %d, want 15", got)
	}
}

func TestDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.reuters.com/world/article", "reuters.com"},
		{"http://en.wikipedia.org/wiki/X", "en.wikipedia.org"},
		{"reuters.com/path", "reuters.com"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Domain(c.in); got != c.want {
			t.Errorf("Domain(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestOwnershipLookup(t *testing.T) {
	e, ok := Ownership("reuters.com")
	if !ok {
		t.Fatalf("expected ownership entry for reuters.com")
	}
	if e.Owner == "" {
		t.Errorf("ownership entry missing owner")
	}
	if _, ok := Ownership("unknown-site.example"); ok {
		t.Errorf("unexpected ownership entry for unknown domain")
	}
}
