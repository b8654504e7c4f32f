package render

import "strings"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes the five characters that can break out of markup or
// an attribute value.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

var imageReplacer = strings.NewReplacer("[", "", "]", "", `"`, "")

// CleanImageURL strips the brackets and quotes that malformed stored image
// values carry, e.g. `["https://x/y.png"]`.
func CleanImageURL(s string) string {
	return strings.TrimSpace(imageReplacer.Replace(s))
}
