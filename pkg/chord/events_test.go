package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// product entries in dispatched props have been through the JSON
// round-trip, so numbers are float64.

func firstProduct(t *testing.T, props map[string]any) map[string]any {
	t.Helper()
	products, ok := props["products"].([]any)
	require.True(t, ok, "products missing or not an array")
	require.NotEmpty(t, products)
	entry, ok := products[0].(map[string]any)
	require.True(t, ok)
	return entry
}

// TestTrackCartViewed tests that the payload is the formatted cart.
func TestTrackCartViewed(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackCartViewed(CartViewedInput[shopCart]{Cart: testCart}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventCartViewed, call.Event)
	assert.Equal(t, "cart-1", call.Props["cart_id"])
	assert.Equal(t, "USD", call.Props["currency"])
	assert.Equal(t, float64(50), call.Props["value"])
	line := firstProduct(t, call.Props)
	assert.Equal(t, "line-1", line["line_item_id"])
	assert.Equal(t, float64(2), line["quantity"])
}

// TestTrackCheckoutStarted tests that the payload is the formatted
// checkout.
func TestTrackCheckoutStarted(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)
	checkout := shopCheckout{ID: "order-1", Currency: "USD", Lines: testCart.Lines, Total: 50}

	c.TrackCheckoutStarted(CheckoutStartedInput[shopCheckout]{Checkout: checkout}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventCheckoutStarted, call.Event)
	assert.Equal(t, "order-1", call.Props["order_id"])
	assert.Equal(t, float64(50), call.Props["value"])
}

// TestTrackCheckoutSteps tests the step events, including omission of
// absent methods.
func TestTrackCheckoutSteps(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackCheckoutStepViewed(CheckoutStepViewedInput{CheckoutID: "chk-1", Step: 1}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventCheckoutStepViewed, call.Event)
	assert.Equal(t, "chk-1", call.Props["checkout_id"])
	assert.Equal(t, float64(1), call.Props["step"])
	assert.NotContains(t, call.Props, "payment_method")
	assert.NotContains(t, call.Props, "shipping_method")

	c.TrackCheckoutStepCompleted(CheckoutStepCompletedInput{
		CheckoutID:     "chk-1",
		Step:           2,
		PaymentMethod:  "card",
		ShippingMethod: "ground",
	}, nil)

	call = recorder.lastTrack(t)
	assert.Equal(t, EventCheckoutStepCompleted, call.Event)
	assert.Equal(t, "card", call.Props["payment_method"])
	assert.Equal(t, "ground", call.Props["shipping_method"])
}

// TestTrackCouponEvents tests the coupon family pass-through.
func TestTrackCouponEvents(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackCouponApplied(CouponAppliedInput{
		CartID:     String("cart-1"),
		CouponID:   String("coupon-1"),
		CouponName: String("MAY_DEALS_3"),
		Discount:   Float(5),
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventCouponApplied, call.Event)
	assert.Equal(t, "coupon-1", call.Props["coupon_id"])
	assert.Equal(t, float64(5), call.Props["discount"])
	assert.NotContains(t, call.Props, "order_id")

	c.TrackCouponDenied(CouponDeniedInput{
		CartID: String("cart-1"),
		Reason: String("expired"),
	}, nil)
	assert.Equal(t, "expired", recorder.lastTrack(t).Props["reason"])

	c.TrackCouponEntered(CouponEnteredInput{CouponID: String("coupon-1")}, nil)
	assert.Equal(t, EventCouponEntered, recorder.lastTrack(t).Event)

	c.TrackCouponRemoved(CouponRemovedInput{CouponID: String("coupon-1"), Discount: Float(5)}, nil)
	assert.Equal(t, EventCouponRemoved, recorder.lastTrack(t).Event)
}

// TestTrackEmailCaptured tests the email capture pass-through.
func TestTrackEmailCaptured(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackEmailCaptured(EmailCapturedInput{
		Email:              String("user@example.com"),
		PlacementComponent: String("footer"),
		PlacementPage:      String("/"),
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventEmailCaptured, call.Event)
	assert.Equal(t, "user@example.com", call.Props["email"])
	assert.Equal(t, "footer", call.Props["placement_component"])
}

// TestTrackProductAdded tests the derived products array and totals.
func TestTrackProductAdded(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackProductAdded(ProductAddedInput[shopCart, shopProduct]{
		Cart:    testCart,
		Product: ProductInput[shopProduct]{Product: testProduct, Quantity: Int(2)},
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventProductAdded, call.Event)
	// Flattened product fields.
	assert.Equal(t, "Terroir Candle", call.Props["name"])
	assert.Equal(t, float64(25), call.Props["price"])
	assert.Equal(t, "prod-1", call.Props["product_id"])
	assert.Equal(t, "SKU-1", call.Props["sku"])
	// Cart-derived fields.
	assert.Equal(t, "cart-1", call.Props["cart_id"])
	assert.Equal(t, "USD", call.Props["currency"])
	// Quantity-derived totals.
	assert.Equal(t, float64(50), call.Props["total"])
	assert.Equal(t, float64(50), call.Props["value"])
	entry := firstProduct(t, call.Props)
	assert.Equal(t, "prod-1", entry["product_id"])
	assert.Equal(t, float64(2), entry["quantity"])
}

// TestTrackProductAdded_QuantityDefaults tests that absent and zero
// quantities both count as 1.
func TestTrackProductAdded_QuantityDefaults(t *testing.T) {
	tests := []struct {
		name     string
		quantity *int
	}{
		{"absent", nil},
		{"zero", Int(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &recordingCDP{}
			c := newTestClient(t, recorder)

			c.TrackProductAdded(ProductAddedInput[shopCart, shopProduct]{
				Cart:    testCart,
				Product: ProductInput[shopProduct]{Product: testProduct, Quantity: tt.quantity},
			}, nil)

			call := recorder.lastTrack(t)
			assert.Equal(t, float64(25), call.Props["total"])
			assert.Equal(t, float64(1), firstProduct(t, call.Props)["quantity"])
		})
	}
}

// TestTrackProductAdded_PassesTrackingPlan tests that a built payload
// satisfies the debug tracking plan, products refinement included.
func TestTrackProductAdded_PassesTrackingPlan(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackProductAdded(ProductAddedInput[shopCart, shopProduct]{
		Cart:    testCart,
		Product: ProductInput[shopProduct]{Product: testProduct, Quantity: Int(2)},
	}, nil)

	for _, result := range c.Validate(EventProductAdded, recorder.lastTrack(t).Props) {
		assert.True(t, result.Success, "violation: %v", result.Err)
	}
}

// TestTrackProductClicked tests list fields and their omission.
func TestTrackProductClicked(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackProductClicked(ProductClickedInput[shopCart, shopProduct]{
		Cart:     testCart,
		ListID:   "featured",
		ListName: "Featured",
		Product:  ProductInput[shopProduct]{Product: testProduct},
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventProductClicked, call.Event)
	assert.Equal(t, "featured", call.Props["item_list_id"])
	assert.Equal(t, "Featured", call.Props["item_list_name"])
	assert.Equal(t, float64(1), firstProduct(t, call.Props)["quantity"])

	c.TrackProductClicked(ProductClickedInput[shopCart, shopProduct]{
		Cart:    testCart,
		Product: ProductInput[shopProduct]{Product: testProduct},
	}, nil)

	call = recorder.lastTrack(t)
	assert.NotContains(t, call.Props, "item_list_id")
	assert.NotContains(t, call.Props, "item_list_name")
}

// TestTrackVariantClicked tests the variant selection payload.
func TestTrackVariantClicked(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackVariantClicked(VariantClickedInput[shopCart, shopProduct]{
		Cart:       testCart,
		Coupon:     String("MAY_DEALS_3"),
		LineItemID: String("line-1"),
		Product:    ProductInput[shopProduct]{Product: testProduct, Quantity: Int(3), VariantID: "var-9"},
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventVariantClicked, call.Event)
	assert.Equal(t, float64(3), call.Props["quantity"])
	assert.Equal(t, "line-1", call.Props["line_item_id"])
	assert.Equal(t, "MAY_DEALS_3", call.Props["coupon"])
	assert.Equal(t, "var-9", call.Props["variant_id"])
}

// TestTrackProductListFiltered tests filters, sorts and the duplicated
// list id fields.
func TestTrackProductListFiltered(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackProductListFiltered(ProductListFilteredInput{
		Category: String("candles"),
		ListID:   "shop-all",
		ListName: "Shop All",
		Filters:  []Filter{{Type: String("department"), Value: String("beauty")}},
		Sorts:    []Sort{{Type: String("price"), Value: String("desc")}},
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventProductListFiltered, call.Event)
	assert.Equal(t, "shop-all", call.Props["list_id"])
	assert.Equal(t, "shop-all", call.Props["item_list_id"])
	assert.Equal(t, "Shop All", call.Props["item_list_name"])
	filters, ok := call.Props["filters"].([]any)
	require.True(t, ok)
	require.Len(t, filters, 1)
	assert.Equal(t, map[string]any{"type": "department", "value": "beauty"}, filters[0])
}

// TestTrackProductListViewed tests the 1-based re-positioning of list
// members and the fixed zero value.
func TestTrackProductListViewed(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)
	second := shopProduct{ID: "prod-2", SKU: "SKU-2", Title: "Wick Trimmer", Cents: 1200}

	c.TrackProductListViewed(ProductListViewedInput[shopProduct]{
		ListID: "shop-all",
		Products: []ProductInput[shopProduct]{
			{Product: testProduct, Position: Int(99)}, // Caller positions are discarded.
			{Product: second},
		},
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventProductListViewed, call.Event)
	assert.Equal(t, float64(0), call.Props["value"])
	products, ok := call.Props["products"].([]any)
	require.True(t, ok)
	require.Len(t, products, 2)
	assert.Equal(t, float64(1), products[0].(map[string]any)["position"])
	assert.Equal(t, float64(2), products[1].(map[string]any)["position"])
	assert.Equal(t, "prod-2", products[1].(map[string]any)["product_id"])
}

// TestTrackProductRemoved tests line-item-derived totals.
func TestTrackProductRemoved(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackProductRemoved(ProductRemovedInput[shopCart, shopLine]{
		Cart:     testCart,
		LineItem: testCart.Lines[0],
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventProductRemoved, call.Event)
	assert.Equal(t, "line-1", call.Props["line_item_id"])
	assert.Equal(t, "cart-1", call.Props["cart_id"])
	assert.Equal(t, float64(50), call.Props["total"])
	assert.Equal(t, float64(50), call.Props["value"])
	assert.Equal(t, "prod-1", firstProduct(t, call.Props)["product_id"])
}

// TestTrackProductViewed tests the single-product view payload.
func TestTrackProductViewed(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackProductViewed(ProductViewedInput[shopCart, shopProduct]{
		Cart:    testCart,
		Product: ProductInput[shopProduct]{Product: testProduct},
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventProductViewed, call.Event)
	assert.Equal(t, float64(25), call.Props["value"])
	assert.Equal(t, float64(25), call.Props["total"])
	assert.Equal(t, float64(1), firstProduct(t, call.Props)["quantity"])
}

// TestTrackProductsSearched tests search pass-through and product id
// omission.
func TestTrackProductsSearched(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackProductsSearched(ProductsSearchedInput{
		Query:     String("candle"),
		Currency:  String("USD"),
		ProductID: "prod-1",
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventProductsSearched, call.Event)
	assert.Equal(t, "candle", call.Props["query"])
	assert.Equal(t, "prod-1", call.Props["product_id"])

	c.TrackProductsSearched(ProductsSearchedInput{Query: String("candle")}, nil)
	assert.NotContains(t, recorder.lastTrack(t).Props, "product_id")
}

// TestTrackAccountEvents tests the account family pass-through.
func TestTrackAccountEvents(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)
	email := String("user@example.com")

	c.TrackSignedIn(SignedInInput{Email: email, Method: String("password")}, nil)
	call := recorder.lastTrack(t)
	assert.Equal(t, EventSignedIn, call.Event)
	assert.Equal(t, "password", call.Props["method"])

	c.TrackSignedOut(SignedOutInput{Email: email}, nil)
	assert.Equal(t, EventSignedOut, recorder.lastTrack(t).Event)

	c.TrackSignedUp(SignedUpInput{Email: email, Method: String("password")}, nil)
	assert.Equal(t, EventSignedUp, recorder.lastTrack(t).Event)

	c.TrackLoginStarted(LoginStartedInput{Email: email}, nil)
	call = recorder.lastTrack(t)
	assert.Equal(t, EventLoginStarted, call.Event)
	assert.Equal(t, "user@example.com", call.Props["email"])
}

// TestTrackSubscriptionCancelled tests product positioning and optional
// products omission.
func TestTrackSubscriptionCancelled(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackSubscriptionCancelled(SubscriptionCancelledInput[shopProduct]{
		Email:          String("user@example.com"),
		IntervalLength: Int(30),
		IntervalUnits:  String("day"),
		Products:       []ProductInput[shopProduct]{{Product: testProduct}},
		SubscriptionID: String("sub-1"),
		Address:        &Address{City: String("Brooklyn"), State: String("NY")},
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventSubscriptionCancelled, call.Event)
	assert.Equal(t, "sub-1", call.Props["subscription_id"])
	assert.Equal(t, float64(30), call.Props["interval_length"])
	assert.Equal(t, float64(1), firstProduct(t, call.Props)["position"])
	address, ok := call.Props["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Brooklyn", address["city"])

	c.TrackSubscriptionCancelled(SubscriptionCancelledInput[shopProduct]{
		SubscriptionID: String("sub-1"),
	}, nil)
	assert.NotContains(t, recorder.lastTrack(t).Props, "products")
}

// TestTrackNavigationClicked tests the navigation pass-through.
func TestTrackNavigationClicked(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackNavigationClicked(NavigationClickedInput{
		Category:            String("header"),
		Label:               String("Shop"),
		NavigationPlacement: String("top"),
		NavigationTitle:     String("Shop All"),
		NavigationURL:       String("/shop"),
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventNavigationClicked, call.Event)
	assert.Equal(t, "/shop", call.Props["navigation_url"])
	assert.Equal(t, "top", call.Props["navigation_placement"])
}

// TestTrackPaymentInfoEntered tests the payment step payload.
func TestTrackPaymentInfoEntered(t *testing.T) {
	recorder := &recordingCDP{}
	c := newTestClient(t, recorder)

	c.TrackPaymentInfoEntered(PaymentInfoEnteredInput[shopProduct]{
		CheckoutID:    String("chk-1"),
		PaymentMethod: String("card"),
		Products:      []ProductInput[shopProduct]{{Product: testProduct}},
		Step:          3,
		Value:         Float(50),
	}, nil)

	call := recorder.lastTrack(t)
	assert.Equal(t, EventPaymentInfoEntered, call.Event)
	assert.Equal(t, "chk-1", call.Props["checkout_id"])
	assert.Equal(t, float64(3), call.Props["step"])
	assert.Equal(t, float64(50), call.Props["value"])
	assert.Equal(t, float64(1), firstProduct(t, call.Props)["position"])
}

// TestEventFormatter_ReplacesPayload tests that an event override's
// return value is dispatched in place of the built payload.
func TestEventFormatter_ReplacesPayload(t *testing.T) {
	recorder := &recordingCDP{}
	var received ProductAdded

	formatters := testFormatters()
	formatters.Events.ProductAdded = func(in ProductAddedInput[shopCart, shopProduct], p ProductAdded) ProductAdded {
		received = p
		return ProductAdded{
			Product:  p.Product,
			Products: p.Products,
			Total:    999,
			Value:    999,
		}
	}

	c := newTestClientConfig(t, Config[shopCart, shopCheckout, shopLine, shopProduct]{
		CDP:        recorder,
		Formatters: formatters,
	})

	c.TrackProductAdded(ProductAddedInput[shopCart, shopProduct]{
		Cart:    testCart,
		Product: ProductInput[shopProduct]{Product: testProduct, Quantity: Int(2)},
	}, nil)

	// The override saw the canonical payload.
	assert.Equal(t, float64(50), received.Total)
	assert.Equal(t, "prod-1", received.ProductID)

	// The dispatched payload is the override's return, wholesale: the
	// cart-derived fields it dropped are gone.
	call := recorder.lastTrack(t)
	assert.Equal(t, float64(999), call.Props["total"])
	assert.NotContains(t, call.Props, "cart_id")
}
