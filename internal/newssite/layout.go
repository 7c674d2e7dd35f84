package newssite

import (
	"strings"
)

var (
	screenshotKeywords = []string{"screenshot", "screen", "mobile", "portrait", "vertical"}
	noticeKeywords     = []string{"circular", "notification", "notice", "announcement", "advisory"}
)

// DetectLayout picks the presentation template for an article from weak
// textual signals in its metadata. The store carries no layout column, so
// intent is inferred instead of asked for. First match wins:
//
//  1. PDF source link -> document
//  2. screenshot-looking image URL -> document
//  3. Notice category -> notice
//  4. notice-style keyword in the title -> notice
//  5. everything else (plain News, Results) -> news
func DetectLayout(n News) Layout {
	if n.SourceLink != nil && strings.HasSuffix(strings.ToLower(*n.SourceLink), ".pdf") {
		return LayoutDocument
	}

	if n.ImageURL != nil {
		lowerURL := strings.ToLower(*n.ImageURL)
		if containsAny(lowerURL, screenshotKeywords) {
			return LayoutDocument
		}
	}

	if n.Category == CategoryNotice {
		return LayoutNotice
	}

	if containsAny(strings.ToLower(n.Title), noticeKeywords) {
		return LayoutNotice
	}

	return LayoutNews
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
