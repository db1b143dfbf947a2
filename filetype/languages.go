package filetype

import "github.com/iw2rmb/quill/syntax"

// registry builds a fresh rule set per lookup so callers never share
// keyword slices.
var registry = map[string]func() syntax.Rules{
	"Rust":       rustRules,
	"Go":         goRules,
	"C":          cRules,
	"C++":        cppRules,
	"Java":       javaRules,
	"JavaScript": javaScriptRules,
	"TypeScript": typeScriptRules,
}

func cFamily(primary, secondary []string) syntax.Rules {
	return syntax.Rules{
		Numbers:           true,
		Strings:           true,
		Characters:        true,
		Comments:          true,
		MultilineComments: true,
		PrimaryKeywords:   primary,
		SecondaryKeywords: secondary,
	}
}

func rustRules() syntax.Rules {
	return cFamily([]string{
		"as", "break", "const", "continue", "crate", "else", "enum", "extern",
		"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
		"move", "mut", "pub", "ref", "return", "self", "Self", "static",
		"struct", "super", "trait", "true", "type", "unsafe", "use", "where",
		"while", "dyn", "abstract", "become", "box", "do", "final", "macro",
		"override", "priv", "typeof", "unsized", "virtual", "yield", "async",
		"await", "try",
	}, []string{
		"bool", "char", "i8", "i16", "i32", "i64", "isize", "u8", "u16", "u32",
		"u64", "usize", "f32", "f64",
	})
}

func goRules() syntax.Rules {
	return cFamily([]string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var", "true", "false", "nil", "iota",
	}, []string{
		"bool", "byte", "complex64", "complex128", "error", "float32",
		"float64", "int", "int8", "int16", "int32", "int64", "rune", "string",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any",
	})
}

func cRules() syntax.Rules {
	return cFamily([]string{
		"auto", "break", "case", "const", "continue", "default", "do", "else",
		"enum", "extern", "for", "goto", "if", "inline", "register", "restrict",
		"return", "sizeof", "static", "struct", "switch", "typedef", "union",
		"volatile", "while", "NULL",
	}, []string{
		"char", "double", "float", "int", "long", "short", "signed",
		"unsigned", "void", "size_t", "bool",
	})
}

func cppRules() syntax.Rules {
	r := cRules()
	r.PrimaryKeywords = append(r.PrimaryKeywords,
		"class", "namespace", "new", "delete", "private", "protected", "public",
		"template", "this", "throw", "try", "catch", "virtual", "using",
		"nullptr", "true", "false", "operator", "constexpr",
	)
	r.SecondaryKeywords = append(r.SecondaryKeywords, "auto", "wchar_t")
	return r
}

func javaRules() syntax.Rules {
	return cFamily([]string{
		"abstract", "break", "case", "catch", "class", "continue", "default",
		"do", "else", "enum", "extends", "final", "finally", "for", "if",
		"implements", "import", "instanceof", "interface", "new", "package",
		"private", "protected", "public", "return", "static", "super",
		"switch", "this", "throw", "throws", "try", "while", "true", "false",
		"null",
	}, []string{
		"boolean", "byte", "char", "double", "float", "int", "long", "short",
		"void", "var", "String",
	})
}

func javaScriptRules() syntax.Rules {
	r := cFamily(javaScriptKeywords(), []string{
		"Array", "Boolean", "Number", "Object", "Promise", "String", "Symbol",
	})
	// Single quotes delimit strings, not character literals.
	r.Characters = false
	return r
}

func typeScriptRules() syntax.Rules {
	r := javaScriptRules()
	r.PrimaryKeywords = append(r.PrimaryKeywords,
		"enum", "implements", "interface", "namespace", "private", "protected",
		"public", "readonly", "type", "declare", "abstract",
	)
	r.SecondaryKeywords = append(r.SecondaryKeywords,
		"any", "boolean", "never", "number", "string", "unknown", "void",
	)
	return r
}

func javaScriptKeywords() []string {
	return []string{
		"async", "await", "break", "case", "catch", "class", "const",
		"continue", "default", "delete", "do", "else", "export", "extends",
		"finally", "for", "function", "if", "import", "in", "instanceof",
		"let", "new", "of", "return", "super", "switch", "this", "throw",
		"try", "typeof", "var", "void", "while", "yield", "true", "false",
		"null", "undefined",
	}
}
