package xhtml

import (
	"regexp"
)

// placeholderBody gives a table that only has a header the body ReqIF requires.
const placeholderBody = "<tbody><tr><td/></tr></tbody>"

type rule struct {
	re   *regexp.Regexp
	repl string
}

var rules = []rule{
	// <s> and <strike> are not part of the XHTML subset
	{regexp.MustCompile(`(</?)s(?:trike)?(\s+|>)`), "${1}del${2}"},
	{regexp.MustCompile(`(<(meta|map)[^>]+>)`), ""},
	{regexp.MustCompile(`(<(?:font)\s*[^>]+>.+?</font>)`), ""},
	{regexp.MustCompile(`(<(?:a)\s+[^>]*?)tabindex=[^\s>]+`), "${1}"},
	{regexp.MustCompile(`(<(?:a|p|span|table)\s+[^>]*?)align=[^\s>]+`), "${1}"},
	{regexp.MustCompile(`(<(?:a|p|span|table)\s+[^>]*?)lang=[^\s>]+`), "${1}"},
	{regexp.MustCompile(`(<(?:a|p|span|table)\s+[^>]*?)info=[^\s>]+`), "${1}"},
	{regexp.MustCompile(`(<(?:a|p|span|table)\s+[^>]*?)target=[^\s>]+`), "${1}"},
	{regexp.MustCompile(`(<(?:a|p|span|table)\s+[^>]*?)(data-[^=]+=[^\s>]+\s*)+`), "${1}"},
	{regexp.MustCompile(`(<(?:a|p|table|tr|td|th|del)\s+[^>]*?)nativestyle=[^\s>]+`), "${1}"},
	{regexp.MustCompile(`(<(?:table|tr|td|th)\s+[^>]*?)id=[^\s>]+`), "${1}"},
	{regexp.MustCompile(`(<(?:td|th)\s+[^>]*?)width=[^\s>]+`), "${1}"},
	{regexp.MustCompile(`(/thead>)\s*(</table)`), "${1}" + placeholderBody + "${2}"},
}

var (
	imgRe      = regexp.MustCompile(`(<(?:img\s+)[^>]*?src([^\s>]+)[^>]*>)`)
	dataMimeRe = regexp.MustCompile(`^(?:.*?data:)([^;]+)`)
)

// Sanitize rewrites markup into the supported XHTML subset.
// Images are not representable and become <object> elements; the MIME type
// is taken from a data: URI when there is one.
func Sanitize(s string) string {
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}

	return imgRe.ReplaceAllStringFunc(s, imageToObject)
}

// imageToObject rewrites one <img> tag. The captured src part still holds the
// "=" and the quotes, e.g. `="data:image/png;base64,AAA"`.
func imageToObject(tag string) string {
	src := imgRe.FindStringSubmatch(tag)[2]

	mime := ""
	if m := dataMimeRe.FindStringSubmatch(src); m != nil {
		mime = m[1]
	}

	return `<object type="` + mime + `" data` + src + ` ></object>`
}
