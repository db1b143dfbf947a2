// Package editor provides the Bubble Tea program around a buffer.Document.
//
// A Session owns the document, the Viewport (cursor and scroll offset) and
// any active search, and exposes the editing intents the key layer needs.
// Model maps key presses onto those intents and renders the text area, the
// status bar and the message bar.
package editor
