package chord

// Metadata configures the meta block attached to every emitted event.
// Ownership keys are configured in their source-system casing and renamed
// to snake_case on emission.
type Metadata struct {
	I18n      I18nMetadata
	Ownership OwnershipMetadata
	Platform  PlatformMetadata
	Store     StoreMetadata
}

// I18nMetadata carries locale information.
type I18nMetadata struct {
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}

// OwnershipMetadata identifies the tenant hierarchy that owns the event.
type OwnershipMetadata struct {
	OMSID    string
	StoreID  string
	TenantID string
}

// PlatformMetadata identifies the emitting platform.
type PlatformMetadata struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// StoreMetadata identifies the storefront.
type StoreMetadata struct {
	Domain string `json:"domain"`
}

// VersionMetadata is the event schema version.
type VersionMetadata struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// schemaVersion is the version stamped into every meta block.
// TODO: derive from the release version instead of hardcoding.
var schemaVersion = VersionMetadata{Major: 3, Minor: 0, Patch: 0}

// Meta is the emitted form of Metadata: ownership keys renamed to
// snake_case, schema version injected.
type Meta struct {
	I18n      I18nMetadata     `json:"i18n"`
	Ownership OwnershipMeta    `json:"ownership"`
	Platform  PlatformMetadata `json:"platform"`
	Store     StoreMetadata    `json:"store"`
	Version   VersionMetadata  `json:"version"`
}

// OwnershipMeta is the emitted ownership block.
type OwnershipMeta struct {
	OMSID    string `json:"oms_id"`
	StoreID  string `json:"store_id"`
	TenantID string `json:"tenant_id"`
}

// Meta builds the meta block attached to every event.
func (c *Client[C, K, L, P]) Meta() Meta {
	md := c.cfg.Metadata
	return Meta{
		I18n: md.I18n,
		Ownership: OwnershipMeta{
			OMSID:    md.Ownership.OMSID,
			StoreID:  md.Ownership.StoreID,
			TenantID: md.Ownership.TenantID,
		},
		Platform: md.Platform,
		Store:    md.Store,
		Version:  schemaVersion,
	}
}
