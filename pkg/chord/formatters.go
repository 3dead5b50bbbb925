package chord

// Object formatters adapt the caller's own domain types into the canonical
// shapes. They must be pure: the same input always yields the same output,
// and the caller-supplied value is never mutated. All four are mandatory;
// New fails without them.

// CartFormatter converts a caller cart into the canonical Cart.
type CartFormatter[C any] func(CartInput[C]) Cart

// CheckoutFormatter converts a caller checkout into the canonical Checkout.
type CheckoutFormatter[K any] func(CheckoutInput[K]) Checkout

// LineItemFormatter converts a caller line item into the canonical LineItem.
type LineItemFormatter[L any] func(LineItemInput[L]) LineItem

// ProductFormatter converts a caller product into the canonical Product.
type ProductFormatter[P any] func(ProductInput[P]) Product

// ObjectFormatters is the required set of object formatters.
type ObjectFormatters[C, K, L, P any] struct {
	Cart     CartFormatter[C]
	Checkout CheckoutFormatter[K]
	LineItem LineItemFormatter[L]
	Product  ProductFormatter[P]
}

// EventFormatters are optional per-event overrides. When set, the formatter
// is called with the original builder input and the payload the builder
// assembled, and its return value is sent in place of that payload. There
// is no merging: the override replaces the payload wholesale.
type EventFormatters[C, K, L, P any] struct {
	CartViewed            func(CartViewedInput[C], CartViewed) CartViewed
	CheckoutStarted       func(CheckoutStartedInput[K], CheckoutStarted) CheckoutStarted
	CheckoutStepViewed    func(CheckoutStepViewedInput, CheckoutStepViewed) CheckoutStepViewed
	CheckoutStepCompleted func(CheckoutStepCompletedInput, CheckoutStepCompleted) CheckoutStepCompleted
	CouponApplied         func(CouponAppliedInput, CouponApplied) CouponApplied
	CouponDenied          func(CouponDeniedInput, CouponDenied) CouponDenied
	CouponEntered         func(CouponEnteredInput, CouponEntered) CouponEntered
	CouponRemoved         func(CouponRemovedInput, CouponRemoved) CouponRemoved
	EmailCaptured         func(EmailCapturedInput, EmailCaptured) EmailCaptured
	ProductAdded          func(ProductAddedInput[C, P], ProductAdded) ProductAdded
	ProductClicked        func(ProductClickedInput[C, P], ProductClicked) ProductClicked
	VariantClicked        func(VariantClickedInput[C, P], VariantClicked) VariantClicked
	ProductListFiltered   func(ProductListFilteredInput, ProductListFiltered) ProductListFiltered
	ProductListViewed     func(ProductListViewedInput[P], ProductListViewed) ProductListViewed
	ProductRemoved        func(ProductRemovedInput[C, L], ProductRemoved) ProductRemoved
	ProductViewed         func(ProductViewedInput[C, P], ProductViewed) ProductViewed
	ProductsSearched      func(ProductsSearchedInput, ProductsSearched) ProductsSearched
	SignedIn              func(SignedInInput, SignedIn) SignedIn
	SignedOut             func(SignedOutInput, SignedOut) SignedOut
	SignedUp              func(SignedUpInput, SignedUp) SignedUp
	LoginStarted          func(LoginStartedInput, LoginStarted) LoginStarted
	SubscriptionCancelled func(SubscriptionCancelledInput[P], SubscriptionCancelled) SubscriptionCancelled
	NavigationClicked     func(NavigationClickedInput, NavigationClicked) NavigationClicked
	PaymentInfoEntered    func(PaymentInfoEnteredInput[P], PaymentInfoEntered) PaymentInfoEntered
}

// Formatters bundles the required object formatters with the optional
// per-event overrides.
type Formatters[C, K, L, P any] struct {
	Objects ObjectFormatters[C, K, L, P]
	Events  EventFormatters[C, K, L, P]
}
