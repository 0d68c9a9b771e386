package config

import "os"

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
}

var Env Environment

func init() {
	// No cookie domain means local development.
	domain := os.Getenv("COOKIE_DOMAIN")

	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	Env = Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
	}
}
