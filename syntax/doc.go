// Package syntax implements quill's fixed, rule-driven line tokenizer.
//
// Highlight classifies every grapheme of one line. The only state carried
// between lines is whether the previous line ended inside a block comment;
// callers thread that flag from row n into row n+1.
package syntax
