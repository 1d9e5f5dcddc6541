package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"strconv"
	"strings"
)

// DSNValue builds the MySQL DSN. An explicit dsn string wins over the
// structured parts; otherwise missing parts fall back to local-dev defaults.
// parseTime is always forced on, GORM needs it for time.Time columns.
func (c DatabaseConfig) DSNValue() string {
	if dsn := strings.TrimSpace(c.DSN); dsn != "" {
		return dsn
	}

	host := fallback(c.Host, defaultDBHost)
	user := fallback(c.User, defaultDBUser)
	password := fallback(c.Password, defaultDBPassword)
	name := fallback(c.Name, defaultDBName)
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}

	params := neturl.Values{}
	for key, value := range c.Params {
		if k, v := strings.TrimSpace(key), strings.TrimSpace(value); k != "" && v != "" {
			params.Set(k, v)
		}
	}
	if !params.Has("charset") {
		params.Set("charset", fallback(c.Charset, defaultDBCharset))
	}
	if !params.Has("loc") {
		params.Set("loc", fallback(c.Loc, defaultDBLoc))
	}
	params.Set("parseTime", "true")

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s", user, password, addr, name, params.Encode())
}

func fallback(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
