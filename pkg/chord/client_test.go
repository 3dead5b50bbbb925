package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RequiresFormatters tests that each missing object formatter is
// rejected by name.
func TestNew_RequiresFormatters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ObjectFormatters[shopCart, shopCheckout, shopLine, shopProduct])
		want   string
	}{
		{"missing cart", func(o *ObjectFormatters[shopCart, shopCheckout, shopLine, shopProduct]) { o.Cart = nil }, "cart"},
		{"missing checkout", func(o *ObjectFormatters[shopCart, shopCheckout, shopLine, shopProduct]) { o.Checkout = nil }, "checkout"},
		{"missing lineItem", func(o *ObjectFormatters[shopCart, shopCheckout, shopLine, shopProduct]) { o.LineItem = nil }, "lineItem"},
		{"missing product", func(o *ObjectFormatters[shopCart, shopCheckout, shopLine, shopProduct]) { o.Product = nil }, "product"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatters := testFormatters()
			tt.mutate(&formatters.Objects)

			_, err := New(Config[shopCart, shopCheckout, shopLine, shopProduct]{
				Formatters: formatters,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingFormatter)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// TestNew_Defaults tests the documented defaults.
func TestNew_Defaults(t *testing.T) {
	c := newTestClient(t, nil)

	assert.False(t, c.Debug())
	assert.True(t, c.enableLogging)
	assert.True(t, c.stripNull)
	assert.NotNil(t, c.logger)
	assert.NotNil(t, c.schemas)
	assert.NotNil(t, c.metrics)
	assert.Nil(t, c.journal)
}

// TestNew_ExplicitToggles tests that explicit false beats the defaults.
func TestNew_ExplicitToggles(t *testing.T) {
	c := newTestClientConfig(t, Config[shopCart, shopCheckout, shopLine, shopProduct]{
		Debug:         true,
		EnableLogging: Bool(false),
		StripNull:     Bool(false),
	})

	assert.True(t, c.Debug())
	assert.False(t, c.enableLogging)
	assert.False(t, c.stripNull)
}

// TestCDP_ProviderInvokedPerCall tests that a provider is re-resolved on
// every dispatch, never cached.
func TestCDP_ProviderInvokedPerCall(t *testing.T) {
	recorder := &recordingCDP{}
	calls := 0

	c := newTestClientConfig(t, Config[shopCart, shopCheckout, shopLine, shopProduct]{
		CDPProvider: func() any {
			calls++
			return recorder
		},
	})

	c.Track("Custom Event", nil, nil)
	c.Track("Custom Event", nil, nil)
	c.Reset()

	assert.Equal(t, 3, calls)
	assert.Len(t, recorder.tracks, 2)
	assert.Equal(t, 1, recorder.resets)
}

// TestCDP_ProviderWinsOverValue tests provider precedence over CDP.
func TestCDP_ProviderWinsOverValue(t *testing.T) {
	viaValue := &recordingCDP{}
	viaProvider := &recordingCDP{}

	c := newTestClientConfig(t, Config[shopCart, shopCheckout, shopLine, shopProduct]{
		CDP:         viaValue,
		CDPProvider: func() any { return viaProvider },
	})

	c.Track("Custom Event", nil, nil)

	assert.Empty(t, viaValue.tracks)
	assert.Len(t, viaProvider.tracks, 1)
}

// TestMeta_Shape tests the emitted meta block: ownership keys renamed,
// version injected.
func TestMeta_Shape(t *testing.T) {
	c := newTestClientConfig(t, Config[shopCart, shopCheckout, shopLine, shopProduct]{
		Metadata: Metadata{
			I18n:      I18nMetadata{Currency: "USD", Locale: "en-US"},
			Ownership: OwnershipMetadata{OMSID: "oms-1", StoreID: "store-1", TenantID: "tenant-1"},
			Platform:  PlatformMetadata{Name: "shop", Type: "web"},
			Store:     StoreMetadata{Domain: "shop.example.com"},
		},
	})

	meta := c.Meta()

	assert.Equal(t, "USD", meta.I18n.Currency)
	assert.Equal(t, "oms-1", meta.Ownership.OMSID)
	assert.Equal(t, "store-1", meta.Ownership.StoreID)
	assert.Equal(t, "tenant-1", meta.Ownership.TenantID)
	assert.Equal(t, "shop", meta.Platform.Name)
	assert.Equal(t, "shop.example.com", meta.Store.Domain)
	assert.Equal(t, VersionMetadata{Major: 3, Minor: 0, Patch: 0}, meta.Version)
}

// TestMeta_JSONKeys tests the wire casing of the meta block.
func TestMeta_JSONKeys(t *testing.T) {
	c := newTestClient(t, nil)

	raw, err := toProperties(struct {
		Meta Meta `json:"meta"`
	}{Meta: c.Meta()})
	require.NoError(t, err)

	meta, ok := raw["meta"].(map[string]any)
	require.True(t, ok)
	ownership, ok := meta["ownership"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, ownership, "oms_id")
	assert.Contains(t, ownership, "store_id")
	assert.Contains(t, ownership, "tenant_id")
	assert.Contains(t, meta, "version")
	assert.Contains(t, meta, "i18n")
}
