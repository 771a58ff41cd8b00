package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by program
// version so an upgrade never serves charts drawn by an older renderer.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ChartKey generates a prefixed chart key.
func (k *ScopedKeyer) ChartKey(tuning string, opts ChartKeyOpts) string {
	return k.prefix + k.inner.ChartKey(tuning, opts)
}

// OutcomeKey generates a prefixed outcome key.
func (k *ScopedKeyer) OutcomeKey(command string, args []string) string {
	return k.prefix + k.inner.OutcomeKey(command, args)
}
