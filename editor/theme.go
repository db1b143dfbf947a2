package editor

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/syntax"
)

// Palette is the colour scheme a Theme is built from. Colours are hex
// strings; an empty colour leaves the terminal default.
type Palette struct {
	Fg   [syntax.TagCount]string
	Bold [syntax.TagCount]bool

	StatusFg, StatusBg string
}

// DefaultPalette is the built-in scheme.
func DefaultPalette() Palette {
	var p Palette
	p.Fg[syntax.Number] = "#dca3a3"
	p.Fg[syntax.Match] = "#268bd2"
	p.Fg[syntax.String] = "#d336be"
	p.Fg[syntax.Char] = "#6c71c4"
	p.Fg[syntax.LineComment] = "#859900"
	p.Fg[syntax.BlockComment] = "#859900"
	p.Fg[syntax.Keyword1] = "#b58900"
	p.Fg[syntax.Keyword2] = "#2aa198"
	p.StatusFg = "#3f3f3f"
	p.StatusBg = "#efefef"
	return p
}

// chromaTokens maps each tag to the chroma token whose style colours it.
var chromaTokens = [syntax.TagCount]chroma.TokenType{
	syntax.Plain:        chroma.Text,
	syntax.Number:       chroma.LiteralNumber,
	syntax.String:       chroma.LiteralString,
	syntax.Char:         chroma.LiteralStringChar,
	syntax.LineComment:  chroma.CommentSingle,
	syntax.BlockComment: chroma.CommentMultiline,
	syntax.Keyword1:     chroma.Keyword,
	syntax.Keyword2:     chroma.KeywordType,
	syntax.Match:        chroma.GenericStrong,
}

// ChromaPalette derives a palette from a registered chroma style, for
// example "monokai" or "solarized-dark".
func ChromaPalette(name string) (Palette, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return Palette{}, fmt.Errorf("editor: unknown theme %q", name)
	}

	var p Palette
	base := style.Get(chroma.Text).Colour
	for tag, tt := range chromaTokens {
		e := style.Get(tt)
		if e.Colour.IsSet() && (tag == int(syntax.Plain) || e.Colour != base) {
			p.Fg[tag] = e.Colour.String()
		}
		p.Bold[tag] = e.Bold == chroma.Yes
	}
	if p.Fg[syntax.Match] == "" {
		p.Fg[syntax.Match] = DefaultPalette().Fg[syntax.Match]
	}
	if bg := style.Get(chroma.Background); bg.Background.IsSet() {
		p.StatusFg = bg.Background.String()
		if bg.Colour.IsSet() {
			p.StatusBg = bg.Colour.String()
		}
	}
	return p, nil
}

// Theme is the set of lipgloss styles the Model renders with.
type Theme struct {
	Tags [syntax.TagCount]lipgloss.Style

	Cursor    lipgloss.Style
	StatusBar lipgloss.Style
	Message   lipgloss.Style
	Tilde     lipgloss.Style
}

// DefaultTheme builds the default palette on the default renderer.
func DefaultTheme() Theme { return NewTheme(nil, DefaultPalette()) }

// NewTheme builds p on r. A nil r uses lipgloss' default renderer.
func NewTheme(r *lipgloss.Renderer, p Palette) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	var t Theme
	for i := range t.Tags {
		st := r.NewStyle()
		if p.Fg[i] != "" {
			st = st.Foreground(lipgloss.Color(p.Fg[i]))
		}
		if p.Bold[i] {
			st = st.Bold(true)
		}
		t.Tags[i] = st
	}
	t.Cursor = r.NewStyle().Reverse(true)
	t.StatusBar = r.NewStyle()
	if p.StatusFg != "" {
		t.StatusBar = t.StatusBar.Foreground(lipgloss.Color(p.StatusFg))
	}
	if p.StatusBg != "" {
		t.StatusBar = t.StatusBar.Background(lipgloss.Color(p.StatusBg))
	}
	t.Message = r.NewStyle()
	t.Tilde = r.NewStyle().Faint(true)
	return t
}

// Tag returns the style for tag, or the plain style for an unknown tag.
func (t Theme) Tag(tag syntax.Tag) lipgloss.Style {
	if int(tag) >= len(t.Tags) {
		return t.Tags[syntax.Plain]
	}
	return t.Tags[tag]
}
