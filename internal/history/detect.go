package history

import "strings"

// previewLimit is the number of runes kept before the preview is cut.
const previewLimit = 50

// makePreview returns text unchanged when it fits, otherwise the first 50
// runes with a trailing ellipsis marker.
func makePreview(text string) string {
	r := []rune(text)
	if len(r) <= previewLimit {
		return text
	}
	return string(r[:previewLimit]) + "..."
}

// codeMarkers are substrings that promote a snippet to TypeCode. The
// trailing spaces on "const " and "import " keep words like "constant"
// from matching.
var codeMarkers = []string{"```", "function", "const ", "import "}

// markdownMarkers are substrings that promote a snippet to TypeMarkdown.
var markdownMarkers = []string{"#", "**", "*", "[", "]"}

// DetectContentType classifies trimmed text. Checks run in priority order:
// URL first, then code, then markdown, with plain text as the fallback.
func DetectContentType(text string) ContentType {
	t := strings.TrimSpace(text)

	if strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") {
		return TypeURL
	}

	for _, m := range codeMarkers {
		if strings.Contains(t, m) {
			return TypeCode
		}
	}

	for _, m := range markdownMarkers {
		if strings.Contains(t, m) {
			return TypeMarkdown
		}
	}

	return TypeText
}
