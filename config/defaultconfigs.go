package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Board: BoardConfig{
			DefaultSize: 19,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}
