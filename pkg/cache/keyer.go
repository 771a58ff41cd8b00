package cache

// ChartKeyOpts are the options that change a laid-out chart.
type ChartKeyOpts struct {
	Frets     int      `json:"frets"`
	Degrees   bool     `json:"degrees"`
	Scales    []string `json:"scales,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Intervals bool     `json:"intervals"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ChartKey identifies a chart rendered in-process.
	ChartKey(tuning string, opts ChartKeyOpts) string

	// OutcomeKey identifies the captured result of running an external
	// renderer command with args.
	OutcomeKey(command string, args []string) string
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ChartKey returns "chart:<hash>".
func (DefaultKeyer) ChartKey(tuning string, opts ChartKeyOpts) string {
	return hashKey("chart", tuning, opts)
}

// OutcomeKey returns "outcome:<hash>".
func (DefaultKeyer) OutcomeKey(command string, args []string) string {
	return hashKey("outcome", command, args)
}
