package config

import (
	"strconv"

	"github.com/chordcommerce/analytics-go/pkg/chord"
)

// Settings is the declarative form of a client configuration, suitable for
// loading from YAML, JSON or the environment. It covers everything in
// chord.Config except the pieces that only exist at runtime (formatters,
// the CDP client, logger, journal and metrics).
type Settings struct {
	// Debug enables tracking plan validation before dispatch.
	Debug bool `yaml:"debug" json:"debug"`
	// EnableLogging toggles client logging. Nil means enabled.
	EnableLogging *bool `yaml:"enable_logging" json:"enable_logging"`
	// StripNull toggles null pruning of payloads. Nil means enabled.
	StripNull *bool `yaml:"strip_null" json:"strip_null"`

	Currency string `yaml:"currency" json:"currency"`
	Locale   string `yaml:"locale" json:"locale"`

	OMSID    string `yaml:"oms_id" json:"oms_id"`
	StoreID  string `yaml:"store_id" json:"store_id"`
	TenantID string `yaml:"tenant_id" json:"tenant_id"`

	PlatformName string `yaml:"platform_name" json:"platform_name"`
	PlatformType string `yaml:"platform_type" json:"platform_type"`

	Domain string `yaml:"domain" json:"domain"`
}

// Metadata converts the settings into the meta block configuration.
func (s Settings) Metadata() chord.Metadata {
	return chord.Metadata{
		I18n: chord.I18nMetadata{
			Currency: s.Currency,
			Locale:   s.Locale,
		},
		Ownership: chord.OwnershipMetadata{
			OMSID:    s.OMSID,
			StoreID:  s.StoreID,
			TenantID: s.TenantID,
		},
		Platform: chord.PlatformMetadata{
			Name: s.PlatformName,
			Type: s.PlatformType,
		},
		Store: chord.StoreMetadata{
			Domain: s.Domain,
		},
	}
}

// Apply copies the settings into a client configuration. Only fields the
// settings cover are touched; explicit values already present in cfg win:
// EnableLogging and StripNull are preserved when set, and Debug is ORed
// since false is indistinguishable from unset.
func Apply[C, K, L, P any](cfg *chord.Config[C, K, L, P], s Settings) {
	cfg.Debug = cfg.Debug || s.Debug
	if cfg.EnableLogging == nil {
		cfg.EnableLogging = s.EnableLogging
	}
	if cfg.StripNull == nil {
		cfg.StripNull = s.StripNull
	}
	cfg.Metadata = s.Metadata()
}

func parseBool(v string) *bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
