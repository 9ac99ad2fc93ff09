package iodb

import (
	"net"
	"net/url"
	"strconv"

	"github.com/gnames/squadcheck/pkg/config"
)

// postgresURL builds a connection URL, escaping credentials and the
// database name.
func postgresURL(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Database,
	}
	q := url.Values{}
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// sqliteDSN opens the file in query-only mode and lets a busy database
// wait instead of failing immediately.
func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "query_only(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}
