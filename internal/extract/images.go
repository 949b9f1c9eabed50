package extract

import (
	"net/url"
	"strings"
)

// flattenImageField coerces the schema.org image field into a plain list of
// URL strings. The field shows up as a bare string, an array of strings, an
// ImageObject with a url key, or an array of those.
func flattenImageField(field any) []string {
	var out []string
	switch v := field.(type) {
	case string:
		out = append(out, v)
	case []any:
		for _, item := range v {
			out = append(out, flattenImageField(item)...)
		}
	case map[string]any:
		if u, ok := v["url"].(string); ok {
			out = append(out, u)
		}
	}
	return out
}

// folderKey reduces an image URL to origin + directory so that the same
// photo served at several crops out of one folder groups together. When the
// URL does not parse, the prefix up to the last "/" stands in.
func folderKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		if idx := strings.LastIndex(rawURL, "/"); idx >= 0 {
			return rawURL[:idx]
		}
		return rawURL
	}
	dir := u.Path
	if idx := strings.LastIndex(dir, "/"); idx >= 0 {
		dir = dir[:idx]
	}
	return u.Scheme + "://" + u.Host + dir
}

// scoreImageURL rates a URL by substring signals that correlate with larger
// or better-cropped renditions on common recipe publishing platforms. New
// platform signals belong here, not in the grouping logic.
func scoreImageURL(rawURL string) int {
	lower := strings.ToLower(rawURL)
	score := 0
	if strings.Contains(lower, "jumbo") {
		score += 4
	}
	if strings.Contains(lower, "large@2x") || strings.Contains(lower, "@2x") {
		score += 3
	}
	if strings.Contains(lower, "3x2") || strings.Contains(lower, "three-by-two") {
		score += 2
	}
	if strings.Contains(lower, ".jpg") || strings.Contains(lower, ".jpeg") {
		score++
	}
	return score
}

// selectImageURLs picks at most max image URLs from the recipe node's image
// field: one best-scoring URL per folder group, groups kept in first-seen
// order, score ties keeping the earlier URL. Publishers routinely emit the
// same photo at 3-8 sizes; grouping by folder is a cheap stand-in for
// hashing image bytes.
func selectImageURLs(field any, max int) []string {
	type group struct {
		url   string
		score int
	}

	groups := make(map[string]*group)
	var order []string
	for _, raw := range flattenImageField(field) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		key := folderKey(raw)
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{url: raw, score: scoreImageURL(raw)}
			order = append(order, key)
			continue
		}
		if s := scoreImageURL(raw); s > g.score {
			g.url, g.score = raw, s
		}
	}

	picks := make([]string, 0, max)
	for _, key := range order {
		picks = append(picks, groups[key].url)
		if len(picks) == max {
			break
		}
	}
	return picks
}
