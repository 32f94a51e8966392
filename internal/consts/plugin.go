package consts

// Defaults stamped into every generated plugin manifest.
const (
	DefaultPluginVersion = "1.0.0"
	DefaultAuthorName    = "regression-io"
	DefaultAuthorEmail   = "ruze@regression.io"
	DefaultHomepage      = "https://github.com/regression-io/claude-config-plugins"
	DefaultKeywordTag    = "claude-config"
)
