package syntax

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blacktop/asmview/internal/cachemanager"
	"github.com/blacktop/asmview/internal/log"
)

// Matcher decides whether a language claims a file: by path suffix, or by a
// pattern applied to the file's first line (shebangs, mode lines).
type Matcher struct {
	PathSuffixes []string
	FirstLine    string
}

// MatchesPath reports whether the matcher claims the given path.
func (m Matcher) MatchesPath(path string) bool {
	for _, suffix := range m.PathSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// CompletionProvider is an optional per-language capability. Languages that
// offer none register with a nil provider.
type CompletionProvider interface {
	Completions(prefix string) []string
}

// LanguageConfig describes a registered language.
type LanguageConfig struct {
	Name      string
	GrammarID string
	Matcher   Matcher
	Hidden    bool
}

// LoadedLanguage is the result of running a language's loader: its config,
// its highlight query, and any optional capabilities.
type LoadedLanguage struct {
	Config      LanguageConfig
	Query       []Rule
	Completions CompletionProvider
}

// LoadFunc produces a language definition on first use. Loading may be
// expensive (parsing query files), so results are cached by the registry.
type LoadFunc func() (*LoadedLanguage, error)

type languageEntry struct {
	config LanguageConfig
	load   LoadFunc
}

// Registry owns grammar engines and language definitions. It is created at
// startup, populated once, and passed by reference into the pipeline; lookups
// after registration are read-only and safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	grammars  map[string]Engine
	languages []languageEntry
	loaded    *cachemanager.InMemoryCacheManager[string, *LoadedLanguage]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		grammars: make(map[string]Engine),
		loaded:   cachemanager.NewInMemoryCacheManager[string, *LoadedLanguage]("languages", cachemanager.NoExpiration, 0),
	}
}

// RegisterGrammar registers a parser engine under a grammar id. Registering
// the same id again replaces the engine.
func (r *Registry) RegisterGrammar(id string, e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grammars[id] = e
	log.Debug(log.CatRegistry, "registered grammar", "id", id)
}

// RegisterLanguage registers a language definition with a lazy loader.
func (r *Registry) RegisterLanguage(cfg LanguageConfig, load LoadFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.languages = append(r.languages, languageEntry{config: cfg, load: load})
	log.Debug(log.CatRegistry, "registered language", "name", cfg.Name, "grammar", cfg.GrammarID)
}

// Lookup returns the engine for the given grammar id. When no engine is
// registered yet, the language owning the grammar is loaded first so that
// its highlight query compiles into one. It fails fast with
// ErrGrammarUnavailable instead of blocking when no language claims the
// id either.
func (r *Registry) Lookup(grammarID string) (Engine, error) {
	if e := r.engine(grammarID); e != nil {
		return e, nil
	}
	if name := r.languageForGrammar(grammarID); name != "" {
		if _, err := r.Language(name); err == nil {
			if e := r.engine(grammarID); e != nil {
				return e, nil
			}
		}
	}
	return nil, fmt.Errorf("grammar %q: %w", grammarID, ErrGrammarUnavailable)
}

func (r *Registry) engine(grammarID string) Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.grammars[grammarID]
}

// languageForGrammar returns the first registered language claiming the
// grammar id. Registration order decides ties.
func (r *Registry) languageForGrammar(grammarID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.languages {
		if entry.config.GrammarID == grammarID {
			return entry.config.Name
		}
	}
	return ""
}

// Language returns the loaded definition for a language by name, running its
// loader on first use and caching the result.
func (r *Registry) Language(name string) (*LoadedLanguage, error) {
	return r.loaded.GetOrLoad(name, cachemanager.NoExpiration, func(string) (*LoadedLanguage, error) {
		r.mu.RLock()
		var entry *languageEntry
		for i := range r.languages {
			if r.languages[i].config.Name == name {
				entry = &r.languages[i]
				break
			}
		}
		r.mu.RUnlock()

		if entry == nil {
			return nil, fmt.Errorf("language %q: %w", name, ErrLanguageUnavailable)
		}

		lang, err := entry.load()
		if err != nil {
			return nil, fmt.Errorf("loading language %q: %w", name, err)
		}
		lang.Config = entry.config

		// The loaded query is what highlighting runs: compile it into
		// the grammar engine, replacing any engine registered under the
		// same id. An empty query leaves a pre-registered engine in
		// place.
		if len(lang.Query) > 0 {
			engine, err := CompileQuery(entry.config.GrammarID, lang.Query)
			if err != nil {
				return nil, fmt.Errorf("compiling query for %q: %w", name, err)
			}
			r.RegisterGrammar(entry.config.GrammarID, engine)
		}

		log.Info(log.CatRegistry, "loaded language", "name", name, "rules", len(lang.Query))
		return lang, nil
	})
}

// LanguageForFile returns the first registered language whose matcher claims
// the path. Registration order decides ties.
func (r *Registry) LanguageForFile(path string) (*LoadedLanguage, error) {
	r.mu.RLock()
	var name string
	for _, entry := range r.languages {
		if entry.config.Matcher.MatchesPath(path) {
			name = entry.config.Name
			break
		}
	}
	r.mu.RUnlock()

	if name == "" {
		return nil, fmt.Errorf("no language for %q: %w", path, ErrLanguageUnavailable)
	}
	return r.Language(name)
}

// Highlight runs one complete highlighting pass: classify the source with
// the named grammar, then build the per-line document.
//
// When the grammar is unavailable the viewer still has a job to do, so an
// unhighlighted document is returned alongside ErrGrammarUnavailable.
// Encoding errors return no document at all: the pipeline never runs
// partially on undecodable input.
func (r *Registry) Highlight(grammarID, src string) (*Document, error) {
	engine, err := r.Lookup(grammarID)
	if err != nil {
		log.Warn(log.CatSyntax, "highlighting without grammar", "grammar", grammarID)
		if !isValidSource(src) {
			return nil, ErrInvalidEncoding
		}
		return PlainDocument(src), err
	}

	captures, err := Classify(engine, src)
	if err != nil {
		return nil, err
	}
	doc := BuildDocument(src, captures)
	log.Debug(log.CatSyntax, "highlighting pass complete", "grammar", grammarID, "lines", doc.Len(), "captures", len(captures))
	return doc, nil
}
