package static

import (
	"net/http"
	"strings"
)

// fresh reports whether the client's cached copy is still current,
// comparing the request's validators against the response validators
// already set on respHeader. If-None-Match takes precedence over
// If-Modified-Since (RFC 9110 §13.1.3); a request Cache-Control of
// no-cache is an end-to-end reload and is never fresh.
func fresh(reqHeader, respHeader http.Header) bool {
	if cc := reqHeader.Get("Cache-Control"); cc != "" &&
		strings.Contains(strings.ToLower(cc), "no-cache") {
		return false
	}

	if inm := reqHeader.Get("If-None-Match"); inm != "" {
		return etagMatch(inm, respHeader.Get("ETag"))
	}

	if ims := reqHeader.Get("If-Modified-Since"); ims != "" {
		lm := respHeader.Get("Last-Modified")
		if lm == "" {
			return false
		}
		imsTime, err := http.ParseTime(ims)
		if err != nil {
			return false
		}
		lmTime, err := http.ParseTime(lm)
		if err != nil {
			return false
		}
		return !lmTime.After(imsTime)
	}

	return false
}

// etagMatch evaluates an If-None-Match field against the response
// ETag using weak comparison, as cache validation requires.
func etagMatch(inm, etag string) bool {
	if strings.TrimSpace(inm) == "*" {
		return etag != ""
	}
	if etag == "" {
		return false
	}

	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range splitETags(inm) {
		if strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}

// splitETags splits an If-None-Match field on commas outside quoted
// strings, so validators that contain commas survive intact.
func splitETags(inm string) []string {
	var tags []string
	start := 0
	quoted := false
	for i := 0; i < len(inm); i++ {
		switch inm[i] {
		case '"':
			quoted = !quoted
		case ',':
			if !quoted {
				if tag := strings.TrimSpace(inm[start:i]); tag != "" {
					tags = append(tags, tag)
				}
				start = i + 1
			}
		}
	}
	if tag := strings.TrimSpace(inm[start:]); tag != "" {
		tags = append(tags, tag)
	}
	return tags
}
