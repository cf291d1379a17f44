package pagination

import (
	"sync/atomic"
)

// Manager holds the active configuration and its compiled patterns.
// Update swaps both atomically, readers never block.
type Manager struct {
	state  atomic.Pointer[managerState]
	cache  *PatternCache
	logger Logger
}

type managerState struct {
	config   Config
	patterns *Patterns
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for configuration changes.
func WithLogger(logger Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithCache shares a pattern cache between managers.
func WithCache(cache *PatternCache) ManagerOption {
	return func(m *Manager) {
		m.cache = cache
	}
}

var _ Resolver = (*Manager)(nil)

// NewManager returns a manager loaded with cfg. On a validation error the
// manager is still returned, with the custom scheme disabled.
func NewManager(cfg Config, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	m.logger = getLogger(m.logger)
	if m.cache == nil {
		size := cfg.CacheSize
		if size == 0 {
			size = DefaultCacheSize
		}
		m.cache = NewPatternCache(size)
	}

	m.state.Store(&managerState{config: DefaultConfig()})
	return m, m.Update(cfg)
}

// Update applies a new configuration. The suffix is normalized first.
// An empty or invalid suffix forces Active to false, and the validation
// error is returned after the inactive configuration has been stored.
func (m *Manager) Update(cfg Config) error {
	cfg, err := withDefaults(cfg)
	if err != nil {
		return err
	}

	suffix, verr := NormalizeSuffix(cfg.Suffix)
	cfg.Suffix = suffix
	if verr != nil || suffix == "" {
		cfg.Active = false
	}

	var patterns *Patterns
	if t, ok := cfg.Template(); ok {
		patterns = m.cache.Get(t, cfg.LegacyBase)
	}

	m.state.Store(&managerState{config: cfg, patterns: patterns})

	if verr != nil {
		m.logger.Warn("pagination suffix rejected", "suffix", suffix, "error", verr)
		return verr
	}

	m.logger.Info("pagination config updated",
		"active", patterns.Active(),
		"suffix", cfg.Suffix,
		"legacy_base", cfg.LegacyBase,
	)
	return nil
}

func (m *Manager) load() *managerState {
	return m.state.Load()
}

// Config returns the configuration currently in effect.
func (m *Manager) Config() Config {
	return m.load().config
}

// Patterns returns the compiled patterns, nil when inactive.
func (m *Manager) Patterns() *Patterns {
	return m.load().patterns
}

// Active reports whether the custom scheme is in effect.
func (m *Manager) Active() bool {
	return m.Patterns().Active()
}

func (m *Manager) PageLink(url string) string {
	return m.Patterns().PageLink(url)
}

func (m *Manager) PageURL(url string, page int) string {
	return m.Patterns().PageURL(url, page)
}

func (m *Manager) CanonicalURL(url string, paged int) string {
	return m.Patterns().CanonicalURL(url, paged)
}

func (m *Manager) TransformRules(table RuleTable) RuleTable {
	return m.Patterns().TransformRules(table)
}

func (m *Manager) Resolve(req Request) Decision {
	return m.Patterns().Resolve(req)
}

func (m *Manager) FilterCanonicalRedirect(redirectURL, requestedURL string) (string, bool) {
	return m.Patterns().FilterCanonicalRedirect(redirectURL, requestedURL)
}

// HeadLinks renders rel prev/next tags for page current of last when
// enabled in the configuration.
func (m *Manager) HeadLinks(url string, current, last int) (string, error) {
	state := m.load()
	if !state.config.PrevNext || !state.patterns.Active() {
		return "", nil
	}
	return RenderHeadLinks(state.patterns.Adjacent(url, current, last))
}
