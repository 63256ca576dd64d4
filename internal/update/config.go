package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/jihokang/ddtd/internal/period"
)

type RuntimeConfig struct {
	ResetHour            int
	ZoneName             string
	DBPath               string
	DesktopNotifications bool
	TickBuffer           int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ResetHour:            period.DefaultResetHour,
		ZoneName:             period.DefaultZoneName,
		DBPath:               "",
		DesktopNotifications: false,
		TickBuffer:           64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("DDTD_RESET_HOUR"); ok && v >= 0 && v <= 23 {
		cfg.ResetHour = v
	}
	if v, ok := getEnvString("DDTD_TIMEZONE"); ok {
		cfg.ZoneName = v
	}
	if v, ok := getEnvString("DDTD_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvBool("DDTD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("DDTD_TICK_BUFFER"); ok && v > 0 {
		cfg.TickBuffer = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
