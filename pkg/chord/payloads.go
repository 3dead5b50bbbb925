package chord

// Canonical event payloads, one per entry in the event catalog. These are
// the bodies handed to Track; the dispatch core adds the meta block on top.
// Embedded objects inline their fields into the payload JSON.

// CartViewed is the payload for "Cart Viewed".
type CartViewed Cart

// CheckoutStarted is the payload for "Checkout Started".
type CheckoutStarted Checkout

// CheckoutStepViewed is the payload for "Checkout Step Viewed".
type CheckoutStepViewed struct {
	CheckoutID     string  `json:"checkout_id"`
	PaymentMethod  *string `json:"payment_method,omitempty"`
	ShippingMethod *string `json:"shipping_method,omitempty"`
	Step           int     `json:"step"`
}

// CheckoutStepCompleted is the payload for "Checkout Step Completed".
type CheckoutStepCompleted struct {
	CheckoutID     string  `json:"checkout_id"`
	PaymentMethod  *string `json:"payment_method,omitempty"`
	ShippingMethod *string `json:"shipping_method,omitempty"`
	Step           int     `json:"step"`
}

// CouponApplied is the payload for "Coupon Applied".
type CouponApplied struct {
	CartID     *string  `json:"cart_id,omitempty"`
	CouponID   *string  `json:"coupon_id,omitempty"`
	CouponName *string  `json:"coupon_name,omitempty"`
	Discount   *float64 `json:"discount,omitempty"`
	OrderID    *string  `json:"order_id,omitempty"`
}

// CouponDenied is the payload for "Coupon Denied".
type CouponDenied struct {
	CartID     *string `json:"cart_id,omitempty"`
	CouponID   *string `json:"coupon_id,omitempty"`
	CouponName *string `json:"coupon_name,omitempty"`
	OrderID    *string `json:"order_id,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

// CouponEntered is the payload for "Coupon Entered".
type CouponEntered struct {
	CartID     *string `json:"cart_id,omitempty"`
	CouponID   *string `json:"coupon_id,omitempty"`
	CouponName *string `json:"coupon_name,omitempty"`
	OrderID    *string `json:"order_id,omitempty"`
}

// CouponRemoved is the payload for "Coupon Removed".
type CouponRemoved struct {
	CartID     *string  `json:"cart_id,omitempty"`
	CouponID   *string  `json:"coupon_id,omitempty"`
	CouponName *string  `json:"coupon_name,omitempty"`
	Discount   *float64 `json:"discount,omitempty"`
	OrderID    *string  `json:"order_id,omitempty"`
}

// EmailCaptured is the payload for "Email Captured".
type EmailCaptured struct {
	Email              *string `json:"email,omitempty"`
	PlacementComponent *string `json:"placement_component,omitempty"`
	PlacementPage      *string `json:"placement_page,omitempty"`
}

// ProductAdded is the payload for "Product Added".
type ProductAdded struct {
	Product
	CartID   *string    `json:"cart_id,omitempty"`
	Currency *string    `json:"currency,omitempty"`
	Products []LineItem `json:"products"`
	Total    float64    `json:"total"`
	Value    float64    `json:"value"`
}

// ProductClicked is the payload for "Product Clicked".
type ProductClicked struct {
	Product
	CartID       *string    `json:"cart_id,omitempty"`
	Currency     *string    `json:"currency,omitempty"`
	ItemListID   *string    `json:"item_list_id,omitempty"`
	ItemListName *string    `json:"item_list_name,omitempty"`
	Products     []LineItem `json:"products"`
}

// VariantClicked is the payload for "Variant Clicked".
type VariantClicked struct {
	Product
	CartID     *string `json:"cart_id,omitempty"`
	Currency   *string `json:"currency,omitempty"`
	Quantity   int     `json:"quantity"`
	LineItemID *string `json:"line_item_id,omitempty"`
	Coupon     *string `json:"coupon,omitempty"`
}

// ProductListFiltered is the payload for "Product List Filtered".
type ProductListFiltered struct {
	Category     *string  `json:"category,omitempty"`
	Filters      []Filter `json:"filters,omitempty"`
	ListID       *string  `json:"list_id,omitempty"`
	ItemListID   *string  `json:"item_list_id,omitempty"`
	ItemListName *string  `json:"item_list_name,omitempty"`
	Sorts        []Sort   `json:"sorts,omitempty"`
}

// ProductListViewed is the payload for "Product List Viewed".
type ProductListViewed struct {
	Category     *string   `json:"category,omitempty"`
	ListID       *string   `json:"list_id,omitempty"`
	ItemListID   *string   `json:"item_list_id,omitempty"`
	ItemListName *string   `json:"item_list_name,omitempty"`
	Products     []Product `json:"products"`
	Value        float64   `json:"value"`
}

// ProductRemoved is the payload for "Product Removed".
type ProductRemoved struct {
	LineItem
	CartID   *string    `json:"cart_id,omitempty"`
	Currency *string    `json:"currency,omitempty"`
	Products []LineItem `json:"products"`
	Total    float64    `json:"total"`
	Value    float64    `json:"value"`
}

// ProductViewed is the payload for "Product Viewed".
type ProductViewed struct {
	Product
	CartID   *string    `json:"cart_id,omitempty"`
	Currency *string    `json:"currency,omitempty"`
	Products []LineItem `json:"products"`
	Total    float64    `json:"total"`
	Value    float64    `json:"value"`
}

// ProductsSearched is the payload for "Products Searched".
type ProductsSearched struct {
	Currency  *string  `json:"currency,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	ProductID *string  `json:"product_id,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	Query     *string  `json:"query,omitempty"`
}

// SignedIn is the payload for "Signed In".
type SignedIn struct {
	Email  *string `json:"email,omitempty"`
	Method *string `json:"method,omitempty"`
}

// SignedOut is the payload for "Signed Out".
type SignedOut struct {
	Email *string `json:"email,omitempty"`
}

// SignedUp is the payload for "Signed Up".
type SignedUp struct {
	Email  *string `json:"email,omitempty"`
	Method *string `json:"method,omitempty"`
}

// LoginStarted is the payload for "Login Started".
type LoginStarted struct {
	Email *string `json:"email,omitempty"`
}

// SubscriptionCancelled is the payload for "Subscription Cancelled".
type SubscriptionCancelled struct {
	ActionableDate *string   `json:"actionable_date,omitempty"`
	Address        *Address  `json:"address,omitempty"`
	Brand          *string   `json:"brand,omitempty"`
	Currency       *string   `json:"currency,omitempty"`
	Email          *string   `json:"email,omitempty"`
	EndDate        *string   `json:"end_date,omitempty"`
	IntervalLength *int      `json:"interval_length,omitempty"`
	IntervalUnits  *string   `json:"interval_units,omitempty"`
	Products       []Product `json:"products,omitempty"`
	State          *string   `json:"state,omitempty"`
	SubscriptionID *string   `json:"subscription_id,omitempty"`
}

// NavigationClicked is the payload for "Navigation Clicked".
type NavigationClicked struct {
	Category            *string `json:"category,omitempty"`
	Label               *string `json:"label,omitempty"`
	NavigationPlacement *string `json:"navigation_placement,omitempty"`
	NavigationTitle     *string `json:"navigation_title,omitempty"`
	NavigationURL       *string `json:"navigation_url,omitempty"`
}

// PaymentInfoEntered is the payload for "Payment Info Entered".
type PaymentInfoEntered struct {
	CheckoutID     *string   `json:"checkout_id,omitempty"`
	Coupon         *string   `json:"coupon,omitempty"`
	Currency       *string   `json:"currency,omitempty"`
	OrderID        *string   `json:"order_id,omitempty"`
	PaymentMethod  *string   `json:"payment_method,omitempty"`
	Products       []Product `json:"products"`
	ShippingMethod *string   `json:"shipping_method,omitempty"`
	Step           int       `json:"step"`
	Value          *float64  `json:"value,omitempty"`
}
