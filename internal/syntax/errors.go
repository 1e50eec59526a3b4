package syntax

import "errors"

// Sentinel errors surfaced by the highlighting pipeline. Everything else
// (malformed capture ranges, per-line anomalies) is handled with a safe
// fallback and never reaches the caller.
var (
	// ErrGrammarUnavailable indicates the requested grammar was never
	// registered or its language failed to load. Callers should fall back
	// to an unhighlighted document rather than aborting.
	ErrGrammarUnavailable = errors.New("grammar unavailable")

	// ErrLanguageUnavailable indicates a language name lookup failed.
	ErrLanguageUnavailable = errors.New("language unavailable")

	// ErrInvalidEncoding indicates the source text is not valid UTF-8.
	// Surfaced before any captures are produced; no partial pipeline run.
	ErrInvalidEncoding = errors.New("source text is not valid UTF-8")
)
