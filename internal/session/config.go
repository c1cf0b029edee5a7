package session

// Backend names a registered session constructor.
type Backend string

const (
	// BackendChrome drives a headless Chrome tab via chromedp.
	BackendChrome Backend = "chrome"
)

// Config is the minimal configuration required for constructing a Session.
type Config struct {
	// Backend selects the registered session constructor. Empty means
	// BackendChrome.
	Backend Backend

	// EnginePath is a local file containing the accessibility rule engine
	// script. When empty the script is fetched once from EngineURL.
	EnginePath string

	// EngineURL is the fallback download location for the rule engine
	// script.
	EngineURL string

	// Headless controls whether the browser runs without a visible window.
	Headless bool
}

func DefaultConfig() Config {
	return Config{
		Backend:   BackendChrome,
		EngineURL: "https://cdn.jsdelivr.net/npm/axe-core@4.10.2/axe.min.js",
		Headless:  true,
	}
}
