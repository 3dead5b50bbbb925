package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FromFile loads settings from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Settings{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into Settings.
func FromYAML(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse yaml: %w", err)
	}
	return s, nil
}

// FromJSON parses JSON data into Settings.
func FromJSON(data []byte) (Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse json: %w", err)
	}
	return s, nil
}

// FromEnv reads settings from CHORD_* environment variables. Any .env files
// passed are loaded first without overriding variables already set in the
// process environment, matching godotenv's default behavior.
//
// Recognized variables:
//
//	CHORD_DEBUG           CHORD_ENABLE_LOGGING  CHORD_STRIP_NULL
//	CHORD_CURRENCY        CHORD_LOCALE
//	CHORD_OMS_ID          CHORD_STORE_ID        CHORD_TENANT_ID
//	CHORD_PLATFORM_NAME   CHORD_PLATFORM_TYPE   CHORD_DOMAIN
func FromEnv(dotenvFiles ...string) (Settings, error) {
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil {
			return Settings{}, fmt.Errorf("load dotenv: %w", err)
		}
	}

	var s Settings
	if v := os.Getenv("CHORD_DEBUG"); v != "" {
		if b := parseBool(v); b != nil {
			s.Debug = *b
		}
	}
	s.EnableLogging = parseBool(os.Getenv("CHORD_ENABLE_LOGGING"))
	s.StripNull = parseBool(os.Getenv("CHORD_STRIP_NULL"))
	s.Currency = os.Getenv("CHORD_CURRENCY")
	s.Locale = os.Getenv("CHORD_LOCALE")
	s.OMSID = os.Getenv("CHORD_OMS_ID")
	s.StoreID = os.Getenv("CHORD_STORE_ID")
	s.TenantID = os.Getenv("CHORD_TENANT_ID")
	s.PlatformName = os.Getenv("CHORD_PLATFORM_NAME")
	s.PlatformType = os.Getenv("CHORD_PLATFORM_TYPE")
	s.Domain = os.Getenv("CHORD_DOMAIN")
	return s, nil
}

// Merge overlays b on top of a: set fields in b win, unset fields keep a's
// value. Debug is ORed since false is indistinguishable from unset.
func Merge(a, b Settings) Settings {
	out := a
	out.Debug = a.Debug || b.Debug
	if b.EnableLogging != nil {
		out.EnableLogging = b.EnableLogging
	}
	if b.StripNull != nil {
		out.StripNull = b.StripNull
	}
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&out.Currency, b.Currency},
		{&out.Locale, b.Locale},
		{&out.OMSID, b.OMSID},
		{&out.StoreID, b.StoreID},
		{&out.TenantID, b.TenantID},
		{&out.PlatformName, b.PlatformName},
		{&out.PlatformType, b.PlatformType},
		{&out.Domain, b.Domain},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	return out
}
