package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Directory holding one JSON document per storage key.
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// Reserved address that marks an opportunity as approved and identifies
	// the platform admin at login.
	AdminEmail string `envconfig:"ADMIN_EMAIL" default:"admin@volunteerhub.com"`

	// Delay before the simulated approval notification fires for a freshly
	// posted opportunity.
	ApprovalDelaySec uint `envconfig:"APPROVAL_DELAY_SEC" default:"5"`

	// Base URL for the remote API client. Unused by the local flows.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:3000"`

	SessionMaxAgeSec int `envconfig:"SESSION_MAX_AGE_SEC" default:"604800"` // 7 days

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}
