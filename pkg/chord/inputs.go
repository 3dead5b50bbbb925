package chord

// Event builder inputs. The type parameters C, K, L and P are the caller's
// own cart, checkout, line item and product types; the client never inspects
// them, it only hands them to the configured object formatters.

// ProductInput wraps a caller product with the event-side fields that
// accompany it.
type ProductInput[P any] struct {
	// Position in a product list, when relevant.
	Position *int
	// Product and variant details in the caller's own shape.
	Product P
	// Quantity of the product involved in the event. When irrelevant it can
	// be omitted; builders default it to 1.
	Quantity *int
	// Identifier of the selected product variant.
	VariantID string
}

// CartInput wraps the caller's current cart.
type CartInput[C any] struct {
	Cart C
}

// CheckoutInput wraps the caller's current checkout.
type CheckoutInput[K any] struct {
	Checkout K
}

// LineItemInput wraps a caller line item.
type LineItemInput[L any] struct {
	LineItem L
}

// CartViewedInput is the input for TrackCartViewed.
type CartViewedInput[C any] struct {
	Cart C
}

// CheckoutStartedInput is the input for TrackCheckoutStarted.
type CheckoutStartedInput[K any] struct {
	Checkout K
}

// CheckoutStepViewedInput is the input for TrackCheckoutStepViewed.
type CheckoutStepViewedInput struct {
	CheckoutID     string
	Step           int
	PaymentMethod  string
	ShippingMethod string
}

// CheckoutStepCompletedInput is the input for TrackCheckoutStepCompleted.
type CheckoutStepCompletedInput struct {
	CheckoutID     string
	Step           int
	PaymentMethod  string
	ShippingMethod string
}

// CouponAppliedInput is the input for TrackCouponApplied.
type CouponAppliedInput struct {
	CartID     *string
	CouponID   *string
	CouponName *string
	Discount   *float64
	OrderID    *string
}

// CouponDeniedInput is the input for TrackCouponDenied.
type CouponDeniedInput struct {
	CartID     *string
	CouponID   *string
	CouponName *string
	OrderID    *string
	Reason     *string
}

// CouponEnteredInput is the input for TrackCouponEntered.
type CouponEnteredInput struct {
	CartID     *string
	CouponID   *string
	CouponName *string
	OrderID    *string
}

// CouponRemovedInput is the input for TrackCouponRemoved.
type CouponRemovedInput struct {
	CartID     *string
	CouponID   *string
	CouponName *string
	Discount   *float64
	OrderID    *string
}

// EmailCapturedInput is the input for TrackEmailCaptured.
type EmailCapturedInput struct {
	Email              *string
	PlacementComponent *string
	PlacementPage      *string
}

// ProductAddedInput is the input for TrackProductAdded. Cart is the cart
// after the product was added.
type ProductAddedInput[C, P any] struct {
	Cart    C
	Product ProductInput[P]
}

// ProductClickedInput is the input for TrackProductClicked.
type ProductClickedInput[C, P any] struct {
	Cart     C
	ListID   string
	ListName string
	Product  ProductInput[P]
}

// VariantClickedInput is the input for TrackVariantClicked.
type VariantClickedInput[C, P any] struct {
	Cart       C
	Coupon     *string
	LineItemID *string
	Product    ProductInput[P]
}

// ProductListFilteredInput is the input for TrackProductListFiltered.
type ProductListFilteredInput struct {
	Category *string
	ListID   string
	ListName string
	Filters  []Filter
	Sorts    []Sort
}

// ProductListViewedInput is the input for TrackProductListViewed.
type ProductListViewedInput[P any] struct {
	Category *string
	ListID   string
	ListName string
	Products []ProductInput[P]
}

// ProductRemovedInput is the input for TrackProductRemoved. LineItem is the
// line item before it was removed.
type ProductRemovedInput[C, L any] struct {
	Cart     C
	LineItem L
}

// ProductViewedInput is the input for TrackProductViewed.
type ProductViewedInput[C, P any] struct {
	Cart    C
	Product ProductInput[P]
}

// ProductsSearchedInput is the input for TrackProductsSearched.
type ProductsSearchedInput struct {
	Currency  *string
	Price     *float64
	ProductID string
	Quantity  *int
	Query     *string
}

// SignedInInput is the input for TrackSignedIn.
type SignedInInput struct {
	Email  *string
	Method *string
}

// SignedOutInput is the input for TrackSignedOut.
type SignedOutInput struct {
	Email *string
}

// SignedUpInput is the input for TrackSignedUp.
type SignedUpInput struct {
	Email  *string
	Method *string
}

// LoginStartedInput is the input for TrackLoginStarted.
type LoginStartedInput struct {
	Email *string
}

// SubscriptionCancelledInput is the input for TrackSubscriptionCancelled.
type SubscriptionCancelledInput[P any] struct {
	// Next date the subscription becomes actionable (renewed, expired, ...).
	ActionableDate *string
	Address        *Address
	Brand          *string
	Currency       *string
	Email          *string
	// The subscription stops auto-renewing after this date.
	EndDate        *string
	IntervalLength *int
	IntervalUnits  *string
	Products       []ProductInput[P]
	State          *string
	SubscriptionID *string
}

// NavigationClickedInput is the input for TrackNavigationClicked.
type NavigationClickedInput struct {
	Category            *string
	Label               *string
	NavigationPlacement *string
	NavigationTitle     *string
	NavigationURL       *string
}

// PaymentInfoEnteredInput is the input for TrackPaymentInfoEntered.
type PaymentInfoEnteredInput[P any] struct {
	CheckoutID     *string
	Coupon         *string
	Currency       *string
	OrderID        *string
	PaymentMethod  *string
	Products       []ProductInput[P]
	ShippingMethod *string
	Step           int
	Value          *float64
}
