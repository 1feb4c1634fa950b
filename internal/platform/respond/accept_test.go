package respond

import "testing"

func TestSelectFormat(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		cbor   bool
	}{
		{"empty defaults to JSON", "", false},
		{"wildcard defaults to JSON", "*/*", false},
		{"application wildcard defaults to JSON", "application/*", false},
		{"explicit JSON", "application/json", false},
		{"explicit CBOR", "application/cbor", true},
		{"problem CBOR", "application/problem+cbor", true},
		{"CBOR preferred by q", "application/json;q=0.5, application/cbor", true},
		{"JSON preferred by q", "application/json, application/cbor;q=0.5", false},
		{"equal q tie goes to JSON", "application/cbor, application/json", false},
		{"CBOR more specific than wildcard", "application/cbor, */*", true},
		{"CBOR excluded", "application/cbor;q=0, */*", false},
		{"JSON excluded", "application/json;q=0, */*", true},
		{"both excluded", "*/*;q=0", false},
		{"suffix wildcard CBOR", "application/*+cbor", true},
		{"suffix wildcard JSON", "application/*+json", false},
		{"unrelated types", "text/html, image/png", false},
		{"case insensitive", "Application/CBOR", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectFormat(tt.accept); got != tt.cbor {
				t.Fatalf("selectFormat(%q) = %v, want %v", tt.accept, got, tt.cbor)
			}
		})
	}
}

func TestParseAccept(t *testing.T) {
	ranges := parseAccept("application/json;q=0.8, , text;level=1, */*;q=invalid, a/b;q=2")
	if len(ranges) != 4 {
		t.Fatalf("expected 4 ranges, got %d", len(ranges))
	}
	if ranges[0].typ != "application" || ranges[0].subtype != "json" || ranges[0].q != 0.8 {
		t.Fatalf("unexpected first range: %+v", ranges[0])
	}
	if ranges[1].typ != "text" || ranges[1].subtype != "*" || ranges[1].q != 1 {
		t.Fatalf("expected text/* with q=1, got %+v", ranges[1])
	}
	if ranges[2].q != 1 {
		t.Fatalf("expected invalid q to default to 1, got %v", ranges[2].q)
	}
	if ranges[3].q != 1 {
		t.Fatalf("expected out-of-range q to default to 1, got %v", ranges[3].q)
	}
}
