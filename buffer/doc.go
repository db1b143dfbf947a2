// Package buffer implements quill's grapheme-accurate document model.
//
// A Document is a flat, ordered sequence of Lines. Coordinates are 0-based
// (Row, GraphemeCol) in grapheme clusters; Row == Len() is the valid caret
// row one past the last line. Positions referencing anything further are
// ignored rather than reported.
package buffer
