// Package config loads the server settings.
//
// The file is INI style:
//
//	[server]
//	addr = :8080
//	read_header_timeout = 5s
//	max_body_bytes = 65536
//
//	[websocket]
//	read_buffer_size = 4096
//	write_buffer_size = 4096
//	allowed_origins = http://localhost:1420, tauri://localhost
//
// Blank lines and lines starting with ';' or '#' are ignored. DERIV_*
// environment variables override the file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	MaxBodyBytes      int64

	ReadBufferSize  int
	WriteBufferSize int
	AllowedOrigins  []string // Empty or "*" allows any origin.
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		MaxBodyBytes:      64 << 10,
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
	}
}

// Load reads path over the defaults, then applies the environment. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config %q: %w", path, err)
		default:
			defer func() { _ = f.Close() }() // Best effort.
			settings, err := parse(f)
			if err != nil {
				return nil, fmt.Errorf("parse config %q: %w", path, err)
			}
			if err := cfg.apply(settings); err != nil {
				return nil, fmt.Errorf("config %q: %w", path, err)
			}
		}
	}
	if err := cfg.apply(fromEnv(os.Getenv)); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

type settings map[string]map[string]string

func (s settings) set(section, key, value string) {
	if s[section] == nil {
		s[section] = map[string]string{}
	}
	s[section][key] = value
}

func parse(r io.Reader) (settings, error) {
	out := settings{}
	scanner := bufio.NewScanner(r)
	section := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || section == "" {
			return nil, fmt.Errorf("line %d: expected key = value inside a section", lineNo)
		}
		out.set(section, strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var envKeys = map[string][2]string{
	"DERIV_ADDR":                {"server", "addr"},
	"DERIV_READ_HEADER_TIMEOUT": {"server", "read_header_timeout"},
	"DERIV_MAX_BODY_BYTES":      {"server", "max_body_bytes"},
	"DERIV_ALLOWED_ORIGINS":     {"websocket", "allowed_origins"},
}

func fromEnv(getenv func(string) string) settings {
	out := settings{}
	for env, key := range envKeys {
		if v := getenv(env); v != "" {
			out.set(key[0], key[1], v)
		}
	}
	return out
}

func (c *Config) apply(s settings) error {
	for section, values := range s {
		for key, value := range values {
			if err := c.applyOne(section, key, value); err != nil {
				return fmt.Errorf("[%s] %s: %w", section, key, err)
			}
		}
	}
	return nil
}

func (c *Config) applyOne(section, key, value string) error {
	var err error
	switch section + "." + key {
	case "server.addr":
		c.Addr = value
	case "server.read_header_timeout":
		c.ReadHeaderTimeout, err = time.ParseDuration(value)
	case "server.max_body_bytes":
		c.MaxBodyBytes, err = strconv.ParseInt(value, 10, 64)
	case "websocket.read_buffer_size":
		c.ReadBufferSize, err = strconv.Atoi(value)
	case "websocket.write_buffer_size":
		c.WriteBufferSize, err = strconv.Atoi(value)
	case "websocket.allowed_origins":
		c.AllowedOrigins = c.AllowedOrigins[:0]
		for _, origin := range strings.Split(value, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, origin)
			}
		}
	default:
		return errors.New("unknown setting")
	}
	return err
}

// OriginAllowed reports whether a browser origin may open a WebSocket.
// Requests without an Origin header are not from a browser and pass.
func (c *Config) OriginAllowed(origin string) bool {
	if origin == "" || len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
