package config

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel: "info",
			GinMode:  "release",
		},
		Target: Target{
			Address:   "127.0.1.1:6667",
			Transport: "tcp",
		},
		Corpus: Corpus{
			ChannelsFile: "corpus/channels.txt",
			NicksFile:    "corpus/nicks.txt",
		},
		Session: Session{
			LogDir: "sessions",
		},
		Echo: Echo{
			Directives:     []string{"PRIVMSG", "NOTICE", "PING", "ERROR", "KICK", "QUIT"},
			SentDirectives: []string{"PRIVMSG", "NOTICE"},
		},
		HTTP: HTTP{
			Addr: "127.0.0.1:8811",
		},
	}
}
