package syntax

// AsmGrammarID identifies the built-in ARM64 assembly grammar.
const AsmGrammarID = "asm"

// AsmLanguageName is the display name the assembly language registers under.
const AsmLanguageName = "Assembly"

// AsmRules returns the assembly highlight query. Declaration order matters:
// comments come first so an identical-extent tie resolves in their favor,
// and the overlap rule (innermost wins) sorts out everything else.
func AsmRules() []Rule {
	return []Rule{
		// Line comments. Both GNU (//) and traditional (;) styles.
		{Capture: "comment", Pattern: `//[^\n]*`},
		{Capture: "comment", Pattern: `;[^\n]*`},

		// Label definitions: an identifier at the start of a line followed
		// by a colon. Only the identifier is captured.
		{Capture: "label", Pattern: `(?m)^[ \t]*([A-Za-z_.$][A-Za-z0-9_.$]*):`},

		// Assembler directives (.globl, .text, .align, ...).
		{Capture: "keyword", Pattern: `(?m)^[ \t]*(\.[a-z_][a-z0-9_]*)\b`},

		// Mnemonics: the first lowercase word on a line (stp, mov, bl, ret).
		{Capture: "keyword", Pattern: `(?m)^[ \t]*([a-z][a-z0-9.]*)(?:[ \t]|$)`},

		// ARM64 registers: x0-x30, w0-w30, SIMD/FP (v, q, d, s, h, b) and
		// the named aliases.
		{Capture: "register", Pattern: `\b([xwvqdshb][0-9]{1,2}|sp|lr|fp|pc|xzr|wzr)\b`},

		// Immediates (#-16, #0x0) and bare numeric literals.
		{Capture: "number", Pattern: `#-?(?:0[xX][0-9a-fA-F]+|[0-9]+)`},
		{Capture: "number", Pattern: `\b(?:0[xX][0-9a-fA-F]+|[0-9]+)\b`},

		// References to mangled symbols (_main, _puts) outside a defining
		// position.
		{Capture: "label", Pattern: `\b(_[A-Za-z0-9_]+)\b`},
	}
}

// RegisterAssembly wires the built-in assembly support into a registry:
// the language definition with its file matcher and highlight query.
// The grammar engine is compiled from the query when the language first
// loads. Mirrors how an extension would register a language at startup.
func RegisterAssembly(r *Registry) {
	cfg := LanguageConfig{
		Name:      AsmLanguageName,
		GrammarID: AsmGrammarID,
		Matcher: Matcher{
			PathSuffixes: []string{".s", ".S", ".asm"},
		},
	}
	r.RegisterLanguage(cfg, func() (*LoadedLanguage, error) {
		return &LoadedLanguage{
			Query: AsmRules(),
			// No completion capability for assembly.
			Completions: nil,
		}, nil
	})
}
