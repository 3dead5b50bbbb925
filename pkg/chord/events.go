package chord

import "github.com/chordcommerce/analytics-go/pkg/chord/cdp"

// Event names in the chord catalog.
const (
	EventCartViewed            = "Cart Viewed"
	EventCheckoutStarted       = "Checkout Started"
	EventCheckoutStepViewed    = "Checkout Step Viewed"
	EventCheckoutStepCompleted = "Checkout Step Completed"
	EventCouponApplied         = "Coupon Applied"
	EventCouponDenied          = "Coupon Denied"
	EventCouponEntered         = "Coupon Entered"
	EventCouponRemoved         = "Coupon Removed"
	EventEmailCaptured         = "Email Captured"
	EventProductAdded          = "Product Added"
	EventProductClicked        = "Product Clicked"
	EventVariantClicked        = "Variant Clicked"
	EventProductListFiltered   = "Product List Filtered"
	EventProductListViewed     = "Product List Viewed"
	EventProductRemoved        = "Product Removed"
	EventProductViewed         = "Product Viewed"
	EventProductsSearched      = "Products Searched"
	EventSignedIn              = "Signed In"
	EventSignedOut             = "Signed Out"
	EventSignedUp              = "Signed Up"
	EventLoginStarted          = "Login Started"
	EventSubscriptionCancelled = "Subscription Cancelled"
	EventNavigationClicked     = "Navigation Clicked"
	EventPaymentInfoEntered    = "Payment Info Entered"
)

// Every builder below follows the same shape: format the nested domain
// objects with the configured object formatters, assemble the canonical
// payload, hand it to the event-level override formatter when one is
// configured (the override's return value replaces the payload outright),
// and delegate to Track.

// TrackCartViewed sends a "Cart Viewed" event.
func (c *Client[C, K, L, P]) TrackCartViewed(input CartViewedInput[C], opts *cdp.Options) *Completion {
	cart := c.cfg.Formatters.Objects.Cart(CartInput[C]{Cart: input.Cart})

	payload := CartViewed(cart)

	if f := c.cfg.Formatters.Events.CartViewed; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventCartViewed, payload, opts)
}

// TrackCheckoutStarted sends a "Checkout Started" event.
func (c *Client[C, K, L, P]) TrackCheckoutStarted(input CheckoutStartedInput[K], opts *cdp.Options) *Completion {
	checkout := c.cfg.Formatters.Objects.Checkout(CheckoutInput[K]{Checkout: input.Checkout})

	payload := CheckoutStarted(checkout)

	if f := c.cfg.Formatters.Events.CheckoutStarted; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventCheckoutStarted, payload, opts)
}

// TrackCheckoutStepViewed sends a "Checkout Step Viewed" event.
func (c *Client[C, K, L, P]) TrackCheckoutStepViewed(input CheckoutStepViewedInput, opts *cdp.Options) *Completion {
	payload := CheckoutStepViewed{
		CheckoutID:     input.CheckoutID,
		PaymentMethod:  optionalString(input.PaymentMethod),
		ShippingMethod: optionalString(input.ShippingMethod),
		Step:           input.Step,
	}

	if f := c.cfg.Formatters.Events.CheckoutStepViewed; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventCheckoutStepViewed, payload, opts)
}

// TrackCheckoutStepCompleted sends a "Checkout Step Completed" event.
func (c *Client[C, K, L, P]) TrackCheckoutStepCompleted(input CheckoutStepCompletedInput, opts *cdp.Options) *Completion {
	payload := CheckoutStepCompleted{
		CheckoutID:     input.CheckoutID,
		PaymentMethod:  optionalString(input.PaymentMethod),
		ShippingMethod: optionalString(input.ShippingMethod),
		Step:           input.Step,
	}

	if f := c.cfg.Formatters.Events.CheckoutStepCompleted; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventCheckoutStepCompleted, payload, opts)
}

// TrackCouponApplied sends a "Coupon Applied" event.
func (c *Client[C, K, L, P]) TrackCouponApplied(input CouponAppliedInput, opts *cdp.Options) *Completion {
	payload := CouponApplied{
		CartID:     input.CartID,
		CouponID:   input.CouponID,
		CouponName: input.CouponName,
		Discount:   input.Discount,
		OrderID:    input.OrderID,
	}

	if f := c.cfg.Formatters.Events.CouponApplied; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventCouponApplied, payload, opts)
}

// TrackCouponDenied sends a "Coupon Denied" event.
func (c *Client[C, K, L, P]) TrackCouponDenied(input CouponDeniedInput, opts *cdp.Options) *Completion {
	payload := CouponDenied{
		CartID:     input.CartID,
		CouponID:   input.CouponID,
		CouponName: input.CouponName,
		OrderID:    input.OrderID,
		Reason:     input.Reason,
	}

	if f := c.cfg.Formatters.Events.CouponDenied; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventCouponDenied, payload, opts)
}

// TrackCouponEntered sends a "Coupon Entered" event.
func (c *Client[C, K, L, P]) TrackCouponEntered(input CouponEnteredInput, opts *cdp.Options) *Completion {
	payload := CouponEntered{
		CartID:     input.CartID,
		CouponID:   input.CouponID,
		CouponName: input.CouponName,
		OrderID:    input.OrderID,
	}

	if f := c.cfg.Formatters.Events.CouponEntered; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventCouponEntered, payload, opts)
}

// TrackCouponRemoved sends a "Coupon Removed" event.
func (c *Client[C, K, L, P]) TrackCouponRemoved(input CouponRemovedInput, opts *cdp.Options) *Completion {
	payload := CouponRemoved{
		CartID:     input.CartID,
		CouponID:   input.CouponID,
		CouponName: input.CouponName,
		Discount:   input.Discount,
		OrderID:    input.OrderID,
	}

	if f := c.cfg.Formatters.Events.CouponRemoved; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventCouponRemoved, payload, opts)
}

// TrackEmailCaptured sends an "Email Captured" event.
func (c *Client[C, K, L, P]) TrackEmailCaptured(input EmailCapturedInput, opts *cdp.Options) *Completion {
	payload := EmailCaptured{
		Email:              input.Email,
		PlacementComponent: input.PlacementComponent,
		PlacementPage:      input.PlacementPage,
	}

	if f := c.cfg.Formatters.Events.EmailCaptured; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventEmailCaptured, payload, opts)
}

// TrackProductAdded sends a "Product Added" event. The cart is the state
// after the add; value and total are price times quantity, quantity
// defaulting to 1.
func (c *Client[C, K, L, P]) TrackProductAdded(input ProductAddedInput[C, P], opts *cdp.Options) *Completion {
	objects := c.cfg.Formatters.Objects
	product := objects.Product(input.Product)
	cart := objects.Cart(CartInput[C]{Cart: input.Cart})
	quantity := quantityOrDefault(input.Product.Quantity)

	payload := ProductAdded{
		Product:  product,
		CartID:   cart.CartID,
		Currency: cart.Currency,
		Products: []LineItem{{Product: product, Quantity: quantity}},
		Total:    product.Price * float64(quantity),
		Value:    product.Price * float64(quantity),
	}

	if f := c.cfg.Formatters.Events.ProductAdded; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventProductAdded, payload, opts)
}

// TrackProductClicked sends a "Product Clicked" event.
func (c *Client[C, K, L, P]) TrackProductClicked(input ProductClickedInput[C, P], opts *cdp.Options) *Completion {
	objects := c.cfg.Formatters.Objects
	product := objects.Product(input.Product)
	cart := objects.Cart(CartInput[C]{Cart: input.Cart})
	quantity := quantityOrDefault(input.Product.Quantity)

	payload := ProductClicked{
		Product:      product,
		CartID:       cart.CartID,
		Currency:     cart.Currency,
		ItemListID:   optionalString(input.ListID),
		ItemListName: optionalString(input.ListName),
		Products:     []LineItem{{Product: product, Quantity: quantity}},
	}

	if f := c.cfg.Formatters.Events.ProductClicked; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventProductClicked, payload, opts)
}

// TrackVariantClicked sends a "Variant Clicked" event.
func (c *Client[C, K, L, P]) TrackVariantClicked(input VariantClickedInput[C, P], opts *cdp.Options) *Completion {
	objects := c.cfg.Formatters.Objects
	product := objects.Product(input.Product)
	cart := objects.Cart(CartInput[C]{Cart: input.Cart})

	payload := VariantClicked{
		Product:    product,
		CartID:     cart.CartID,
		Currency:   cart.Currency,
		Quantity:   quantityOrDefault(input.Product.Quantity),
		LineItemID: input.LineItemID,
		Coupon:     input.Coupon,
	}

	if f := c.cfg.Formatters.Events.VariantClicked; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventVariantClicked, payload, opts)
}

// TrackProductListFiltered sends a "Product List Filtered" event.
func (c *Client[C, K, L, P]) TrackProductListFiltered(input ProductListFilteredInput, opts *cdp.Options) *Completion {
	payload := ProductListFiltered{
		Category:     input.Category,
		Filters:      input.Filters,
		ListID:       optionalString(input.ListID),
		ItemListID:   optionalString(input.ListID),
		ItemListName: optionalString(input.ListName),
		Sorts:        input.Sorts,
	}

	if f := c.cfg.Formatters.Events.ProductListFiltered; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventProductListFiltered, payload, opts)
}

// TrackProductListViewed sends a "Product List Viewed" event. List members
// are re-positioned 1-based in input order; any caller-supplied position is
// discarded.
func (c *Client[C, K, L, P]) TrackProductListViewed(input ProductListViewedInput[P], opts *cdp.Options) *Completion {
	payload := ProductListViewed{
		Category:     input.Category,
		ListID:       optionalString(input.ListID),
		ItemListID:   optionalString(input.ListID),
		ItemListName: optionalString(input.ListName),
		Products:     c.formatPositioned(input.Products),
	}

	if f := c.cfg.Formatters.Events.ProductListViewed; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventProductListViewed, payload, opts)
}

// TrackProductRemoved sends a "Product Removed" event. The line item is the
// state before removal; value and total are price times quantity, quantity
// defaulting to 1 when the formatter leaves it unset.
func (c *Client[C, K, L, P]) TrackProductRemoved(input ProductRemovedInput[C, L], opts *cdp.Options) *Completion {
	objects := c.cfg.Formatters.Objects
	lineItem := objects.LineItem(LineItemInput[L]{LineItem: input.LineItem})
	cart := objects.Cart(CartInput[C]{Cart: input.Cart})

	quantity := lineItem.Quantity
	if quantity == 0 {
		quantity = 1
	}

	payload := ProductRemoved{
		LineItem: lineItem,
		CartID:   cart.CartID,
		Currency: cart.Currency,
		Products: []LineItem{lineItem},
		Total:    lineItem.Price * float64(quantity),
		Value:    lineItem.Price * float64(quantity),
	}

	if f := c.cfg.Formatters.Events.ProductRemoved; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventProductRemoved, payload, opts)
}

// TrackProductViewed sends a "Product Viewed" event.
func (c *Client[C, K, L, P]) TrackProductViewed(input ProductViewedInput[C, P], opts *cdp.Options) *Completion {
	objects := c.cfg.Formatters.Objects
	product := objects.Product(input.Product)
	cart := objects.Cart(CartInput[C]{Cart: input.Cart})
	quantity := quantityOrDefault(input.Product.Quantity)

	payload := ProductViewed{
		Product:  product,
		CartID:   cart.CartID,
		Currency: cart.Currency,
		Products: []LineItem{{Product: product, Quantity: quantity}},
		Total:    product.Price * float64(quantity),
		Value:    product.Price * float64(quantity),
	}

	if f := c.cfg.Formatters.Events.ProductViewed; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventProductViewed, payload, opts)
}

// TrackProductsSearched sends a "Products Searched" event.
func (c *Client[C, K, L, P]) TrackProductsSearched(input ProductsSearchedInput, opts *cdp.Options) *Completion {
	payload := ProductsSearched{
		Currency:  input.Currency,
		Price:     input.Price,
		ProductID: optionalString(input.ProductID),
		Quantity:  input.Quantity,
		Query:     input.Query,
	}

	if f := c.cfg.Formatters.Events.ProductsSearched; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventProductsSearched, payload, opts)
}

// TrackSignedIn sends a "Signed In" event.
func (c *Client[C, K, L, P]) TrackSignedIn(input SignedInInput, opts *cdp.Options) *Completion {
	payload := SignedIn{
		Email:  input.Email,
		Method: input.Method,
	}

	if f := c.cfg.Formatters.Events.SignedIn; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventSignedIn, payload, opts)
}

// TrackSignedOut sends a "Signed Out" event.
func (c *Client[C, K, L, P]) TrackSignedOut(input SignedOutInput, opts *cdp.Options) *Completion {
	payload := SignedOut{
		Email: input.Email,
	}

	if f := c.cfg.Formatters.Events.SignedOut; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventSignedOut, payload, opts)
}

// TrackSignedUp sends a "Signed Up" event.
func (c *Client[C, K, L, P]) TrackSignedUp(input SignedUpInput, opts *cdp.Options) *Completion {
	payload := SignedUp{
		Email:  input.Email,
		Method: input.Method,
	}

	if f := c.cfg.Formatters.Events.SignedUp; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventSignedUp, payload, opts)
}

// TrackLoginStarted sends a "Login Started" event.
func (c *Client[C, K, L, P]) TrackLoginStarted(input LoginStartedInput, opts *cdp.Options) *Completion {
	payload := LoginStarted{
		Email: input.Email,
	}

	if f := c.cfg.Formatters.Events.LoginStarted; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventLoginStarted, payload, opts)
}

// TrackSubscriptionCancelled sends a "Subscription Cancelled" event.
func (c *Client[C, K, L, P]) TrackSubscriptionCancelled(input SubscriptionCancelledInput[P], opts *cdp.Options) *Completion {
	payload := SubscriptionCancelled{
		ActionableDate: input.ActionableDate,
		Address:        input.Address,
		Brand:          input.Brand,
		Currency:       input.Currency,
		Email:          input.Email,
		EndDate:        input.EndDate,
		IntervalLength: input.IntervalLength,
		IntervalUnits:  input.IntervalUnits,
		Products:       c.formatPositioned(input.Products),
		State:          input.State,
		SubscriptionID: input.SubscriptionID,
	}

	if f := c.cfg.Formatters.Events.SubscriptionCancelled; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventSubscriptionCancelled, payload, opts)
}

// TrackNavigationClicked sends a "Navigation Clicked" event.
func (c *Client[C, K, L, P]) TrackNavigationClicked(input NavigationClickedInput, opts *cdp.Options) *Completion {
	payload := NavigationClicked{
		Category:            input.Category,
		Label:               input.Label,
		NavigationPlacement: input.NavigationPlacement,
		NavigationTitle:     input.NavigationTitle,
		NavigationURL:       input.NavigationURL,
	}

	if f := c.cfg.Formatters.Events.NavigationClicked; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventNavigationClicked, payload, opts)
}

// TrackPaymentInfoEntered sends a "Payment Info Entered" event.
func (c *Client[C, K, L, P]) TrackPaymentInfoEntered(input PaymentInfoEnteredInput[P], opts *cdp.Options) *Completion {
	payload := PaymentInfoEntered{
		CheckoutID:     input.CheckoutID,
		Coupon:         input.Coupon,
		Currency:       input.Currency,
		OrderID:        input.OrderID,
		PaymentMethod:  input.PaymentMethod,
		Products:       c.formatPositioned(input.Products),
		ShippingMethod: input.ShippingMethod,
		Step:           input.Step,
		Value:          input.Value,
	}

	if f := c.cfg.Formatters.Events.PaymentInfoEntered; f != nil {
		payload = f(input, payload)
	}
	return c.Track(EventPaymentInfoEntered, payload, opts)
}

// formatPositioned formats a product list, overwriting each member's
// position with its 1-based input order.
func (c *Client[C, K, L, P]) formatPositioned(inputs []ProductInput[P]) []Product {
	if inputs == nil {
		return nil
	}
	products := make([]Product, len(inputs))
	for i, input := range inputs {
		position := i + 1
		input.Position = &position
		products[i] = c.cfg.Formatters.Objects.Product(input)
	}
	return products
}

// quantityOrDefault defaults an absent or zero quantity to 1.
func quantityOrDefault(q *int) int {
	if q == nil || *q == 0 {
		return 1
	}
	return *q
}

// optionalString maps the empty string to an absent field.
func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
