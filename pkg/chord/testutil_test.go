package chord

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chordcommerce/analytics-go/pkg/chord/cdp"
)

// Caller-side domain types used across tests. Deliberately shaped nothing
// like the canonical objects so the formatters do real work.

type shopProduct struct {
	ID    string
	SKU   string
	Title string
	Cents int
}

type shopLine struct {
	Product  shopProduct
	LineID   string
	Quantity int
}

type shopCart struct {
	ID       string
	Currency string
	Lines    []shopLine
	Total    float64
}

type shopCheckout struct {
	ID       string
	Currency string
	Lines    []shopLine
	Total    float64
}

// Shared fixtures.

var testProduct = shopProduct{ID: "prod-1", SKU: "SKU-1", Title: "Terroir Candle", Cents: 2500}

var testCart = shopCart{
	ID:       "cart-1",
	Currency: "USD",
	Lines:    []shopLine{{Product: testProduct, LineID: "line-1", Quantity: 2}},
	Total:    50,
}

func formatShopProduct(in ProductInput[shopProduct]) Product {
	p := Product{
		Name:      in.Product.Title,
		Price:     float64(in.Product.Cents) / 100,
		ProductID: in.Product.ID,
		SKU:       in.Product.SKU,
		Position:  in.Position,
	}
	if in.VariantID != "" {
		p.VariantID = String(in.VariantID)
	}
	return p
}

func formatShopLine(in LineItemInput[shopLine]) LineItem {
	return LineItem{
		Product:    formatShopProduct(ProductInput[shopProduct]{Product: in.LineItem.Product}),
		LineItemID: String(in.LineItem.LineID),
		Quantity:   in.LineItem.Quantity,
	}
}

func shopLines(lines []shopLine) []LineItem {
	out := make([]LineItem, len(lines))
	for i, line := range lines {
		out[i] = formatShopLine(LineItemInput[shopLine]{LineItem: line})
	}
	return out
}

func formatShopCart(in CartInput[shopCart]) Cart {
	return Cart{
		CartID:   String(in.Cart.ID),
		Currency: String(in.Cart.Currency),
		Products: shopLines(in.Cart.Lines),
		Value:    Float(in.Cart.Total),
	}
}

func formatShopCheckout(in CheckoutInput[shopCheckout]) Checkout {
	return Checkout{
		Currency: String(in.Checkout.Currency),
		OrderID:  String(in.Checkout.ID),
		Products: shopLines(in.Checkout.Lines),
		Value:    Float(in.Checkout.Total),
	}
}

func testFormatters() Formatters[shopCart, shopCheckout, shopLine, shopProduct] {
	return Formatters[shopCart, shopCheckout, shopLine, shopProduct]{
		Objects: ObjectFormatters[shopCart, shopCheckout, shopLine, shopProduct]{
			Cart:     formatShopCart,
			Checkout: formatShopCheckout,
			LineItem: formatShopLine,
			Product:  formatShopProduct,
		},
	}
}

// trackCall records one Track invocation on the recording CDP.
type trackCall struct {
	Event string
	Props map[string]any
	Opts  *cdp.Options
}

// identifyCall records one Identify invocation on the recording CDP.
type identifyCall struct {
	UserID string
	Traits cdp.Traits
	Opts   *cdp.Options
}

// recordingCDP implements every capability interface and remembers the
// calls it receives. Track invokes done synchronously unless holdDone is
// set, in which case the callbacks accumulate in pendingDone.
type recordingCDP struct {
	mu          sync.Mutex
	tracks      []trackCall
	identifies  []identifyCall
	pages       []map[string]any
	resets      int
	holdDone    bool
	pendingDone []func()
}

func (r *recordingCDP) Track(event string, props map[string]any, opts *cdp.Options, done func()) error {
	r.mu.Lock()
	r.tracks = append(r.tracks, trackCall{Event: event, Props: props, Opts: opts})
	hold := r.holdDone
	if hold {
		r.pendingDone = append(r.pendingDone, done)
	}
	r.mu.Unlock()

	if !hold {
		done()
	}
	return nil
}

func (r *recordingCDP) Identify(userID string, traits cdp.Traits, opts *cdp.Options) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identifies = append(r.identifies, identifyCall{UserID: userID, Traits: traits, Opts: opts})
	return nil
}

func (r *recordingCDP) Page(props map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, props)
	return nil
}

func (r *recordingCDP) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
	return nil
}

func (r *recordingCDP) lastTrack(t *testing.T) trackCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.tracks)
	return r.tracks[len(r.tracks)-1]
}

// failingCDP returns err from Track without ever invoking done.
type failingCDP struct {
	err error
}

func (f *failingCDP) Track(string, map[string]any, *cdp.Options, func()) error {
	return f.err
}

// panickyCDP panics on every capability it implements.
type panickyCDP struct{}

func (panickyCDP) Track(string, map[string]any, *cdp.Options, func()) error {
	panic("track exploded")
}

func (panickyCDP) Reset() error {
	panic("reset exploded")
}

// quietLogger discards diagnostics so failure-path tests don't pollute
// the test output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient builds a client around the given CDP with the shop
// formatters and a discarding logger.
func newTestClient(t *testing.T, cdpClient any) *Client[shopCart, shopCheckout, shopLine, shopProduct] {
	t.Helper()
	c, err := New(Config[shopCart, shopCheckout, shopLine, shopProduct]{
		CDP:        cdpClient,
		Formatters: testFormatters(),
		Logger:     quietLogger(),
	})
	require.NoError(t, err)
	return c
}

// newTestClientConfig builds a client from a caller-tuned config, filling
// in the shop formatters and a discarding logger when absent.
func newTestClientConfig(t *testing.T, cfg Config[shopCart, shopCheckout, shopLine, shopProduct]) *Client[shopCart, shopCheckout, shopLine, shopProduct] {
	t.Helper()
	if cfg.Formatters.Objects.Cart == nil {
		cfg.Formatters.Objects = testFormatters().Objects
	}
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}
