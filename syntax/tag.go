package syntax

// Tag classifies a single grapheme for display styling.
type Tag uint8

const (
	Plain Tag = iota
	Number
	String
	Char
	LineComment
	BlockComment
	Keyword1
	Keyword2
	Match

	// TagCount is the number of defined tags.
	TagCount
)

var tagNames = [TagCount]string{
	Plain:        "plain",
	Number:       "number",
	String:       "string",
	Char:         "char",
	LineComment:  "line-comment",
	BlockComment: "block-comment",
	Keyword1:     "keyword1",
	Keyword2:     "keyword2",
	Match:        "match",
}

func (t Tag) String() string {
	if t < TagCount {
		return tagNames[t]
	}
	return "unknown"
}
