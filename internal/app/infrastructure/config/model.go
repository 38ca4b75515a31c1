package config

type Config struct {
	App     App     `json:"app"`
	Target  Target  `json:"target"`
	Corpus  Corpus  `json:"corpus"`
	Session Session `json:"session"`
	Echo    Echo    `json:"echo"`
	HTTP    HTTP    `json:"http"`
}

type App struct {
	LogLevel string `json:"log_level"`
	GinMode  string `json:"gin_mode"`
}

type Target struct {
	Address   string `json:"address"`
	Transport string `json:"transport"` // "tcp" или "websocket"
	TLS       bool   `json:"tls"`
	URL       string `json:"url"` // только для websocket
}

type Corpus struct {
	ChannelsFile string `json:"channels_file"`
	NicksFile    string `json:"nicks_file"`
}

type Session struct {
	LogDir string `json:"log_dir"`
}

type Echo struct {
	Directives     []string `json:"directives"`      // подстроки входящих строк, которые выводятся в консоль
	SentDirectives []string `json:"sent_directives"` // префиксы исходящих строк, которые выводятся в консоль
}

type HTTP struct {
	Addr      string `json:"addr"`
	AuthToken string `json:"auth_token"`
}
