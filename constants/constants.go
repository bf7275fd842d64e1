package constants

// Config
const VerboseEnvVar = "VERBOSE"
const ConfigFileEnvVar = "CONFIG_FILE"

// Path to the optional config file, relative to the user home directory.
const ConfigFileName = ".yoauth/config.yml"

// Provider endpoints, relative to the configured API base URL.
const AuthorizePath = "/oauth2/request_auth"
const TokenPath = "/oauth2/get_token"
const UserinfoPath = "/openid/v1/userinfo"
const RevokePath = "/oauth2/revoke"

// Defaults
const DefaultAPIBaseURL = "https://api.login.yahoo.com"
const DefaultScope = "openid email profile"
const DefaultTokenFileName = "token.json"
const DefaultInfoFileName = "userinfo.json"

// Error messages
const ErrMsgNoToken = "Not authenticated. Run `yoauth login` or `yoauth exchange-code <code>` first."
