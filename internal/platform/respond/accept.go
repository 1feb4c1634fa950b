package respond

import (
	"strconv"
	"strings"
)

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Missing or invalid
// q values default to 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		mt := strings.ToLower(strings.TrimSpace(params[0]))
		typ, subtype, ok := strings.Cut(mt, "/")
		if !ok {
			subtype = "*"
		}
		q := 1.0
		for _, p := range params[1:] {
			k, v, found := strings.Cut(strings.TrimSpace(p), "=")
			if !found || strings.ToLower(strings.TrimSpace(k)) != "q" {
				continue
			}
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && parsed >= 0 && parsed <= 1 {
				q = parsed
			}
		}
		ranges = append(ranges, mediaRange{typ: typ, subtype: subtype, q: q})
	}
	return ranges
}

// matchQuality returns the q value the ranges assign to the format whose
// structured-syntax suffix is suffix ("json" or "cbor") and how specific the
// match was. specificity 0 means no range matched.
func matchQuality(ranges []mediaRange, suffix string) (q float64, specificity int) {
	for _, r := range ranges {
		spec := 0
		switch {
		case r.typ == "application" && (r.subtype == suffix || r.subtype == "problem+"+suffix):
			spec = 4
		case r.typ == "application" && r.subtype == "*+"+suffix:
			spec = 3
		case r.typ == "application" && r.subtype == "*":
			spec = 2
		case r.typ == "*" && r.subtype == "*":
			spec = 1
		}
		if spec > specificity {
			specificity = spec
			q = r.q
		}
	}
	return q, specificity
}

// selectFormat reports whether CBOR should be used for the given Accept
// header. JSON wins ties and is the default when nothing matches.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)
	cborQ, cborSpec := matchQuality(ranges, "cbor")
	if cborSpec == 0 || cborQ == 0 {
		return false
	}
	jsonQ, jsonSpec := matchQuality(ranges, "json")
	if jsonSpec == 0 || jsonQ == 0 {
		return true
	}
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return cborSpec > jsonSpec
}
