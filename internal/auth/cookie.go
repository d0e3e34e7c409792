package auth

import "strings"

// CookieValue returns the value paired with name in a raw Cookie header of
// the form "n1=v1; n2=v2". First match wins when a name repeats. This is
// transport framing only; no token parsing happens here.
func CookieValue(header, name string) (string, bool) {
	if header == "" || name == "" {
		return "", false
	}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		if k == name {
			return v, true
		}
	}
	return "", false
}
