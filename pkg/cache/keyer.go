package cache

// Keyer builds cache keys for pipeline products. Keys embed a hash of the
// graph together with every option that influences the result, so a change in
// either produces a different key.
type Keyer interface {
	AnalysisKey(graphHash string, opts AnalysisKeyOpts) string
	DecompositionKey(graphHash string, opts AnalysisKeyOpts) string
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// AnalysisKeyOpts holds the inputs of an analysis besides the graph itself.
type AnalysisKeyOpts struct {
	Disabled []string `json:"disabled,omitempty"`
}

// LayoutKeyOpts holds the layout parameters that affect coordinates.
type LayoutKeyOpts struct {
	Width            float64  `json:"width"`
	Height           float64  `json:"height"`
	ForceIterations  int      `json:"force_iterations"`
	AnnealIterations int      `json:"anneal_iterations"`
	Seed             uint64   `json:"seed"`
	Disabled         []string `json:"disabled,omitempty"`
}

// ArtifactKeyOpts holds the rendering parameters of an output artifact.
type ArtifactKeyOpts struct {
	Format   string   `json:"format"`
	Tree     bool     `json:"tree,omitempty"`
	Disabled []string `json:"disabled,omitempty"`
}

// DefaultKeyer hashes the graph hash and options into prefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) AnalysisKey(graphHash string, opts AnalysisKeyOpts) string {
	return hashKey("analysis.v2", graphHash, opts)
}

func (DefaultKeyer) DecompositionKey(graphHash string, opts AnalysisKeyOpts) string {
	return hashKey("spqr.v2", graphHash, opts)
}

func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

var _ Keyer = DefaultKeyer{}
