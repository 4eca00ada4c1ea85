// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import "strings"

// matchRoute reports whether path matches pattern and extracts named
// parameters. Patterns are slash-separated segments; a segment starting with
// ':' matches any single non-empty path segment and captures it under its
// name. Segment counts must agree exactly; there is no prefix or wildcard
// matching.
func matchRoute(pattern, path string) (map[string]string, bool) {
	ps := splitPath(pattern)
	rs := splitPath(path)
	if len(ps) != len(rs) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range ps {
		if strings.HasPrefix(seg, ":") && len(seg) > 1 {
			if rs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg[1:]] = rs[i]
			continue
		}
		if seg != rs[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
