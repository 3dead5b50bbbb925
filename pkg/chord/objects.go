package chord

// Canonical object shapes. These are the snake_case, schema-stable forms
// that object formatters produce and event payloads embed. Optional fields
// are pointers so that "absent" and "zero" stay distinguishable on the wire;
// use the String/Float/Int/Bool helpers to build them.

// Product is the canonical product shape.
type Product struct {
	// Store or affiliation the product is sold through (for example, "Google Store").
	Affiliation *string `json:"affiliation,omitempty"`
	// Brand associated with the product.
	Brand *string `json:"brand,omitempty"`
	// Product belongs to a bundle.
	Bundle *bool `json:"bundle,omitempty"`
	// Product category.
	Category *string `json:"category,omitempty"`
	// Short description of the product.
	Description *string `json:"description,omitempty"`
	// Image URL of the product.
	ImageURL *string `json:"image_url,omitempty"`
	// Name of the product.
	Name string `json:"name"`
	// Option values of the product variant.
	OptionValues []string `json:"option_values,omitempty"`
	// Position in a product list (1-based).
	Position *int `json:"position,omitempty"`
	// Price of the product.
	Price float64 `json:"price"`
	// Database ID of the product.
	ProductID string `json:"product_id"`
	// SKU of the product variant.
	SKU string `json:"sku"`
	// Slug of the product, often used in URLs.
	Slug *string `json:"slug,omitempty"`
	// URL of the product page.
	URL *string `json:"url,omitempty"`
	// Name of the product variant.
	Variant *string `json:"variant,omitempty"`
	// Unique ID of the product variant.
	VariantID *string `json:"variant_id,omitempty"`
}

// LineItem is a Product plus cart line fields.
type LineItem struct {
	Product
	// Coupon code associated with the line (for example, "MAY_DEALS_3").
	Coupon *string `json:"coupon,omitempty"`
	// Database ID of the line item.
	LineItemID *string `json:"line_item_id,omitempty"`
	// Quantity of the product.
	Quantity int `json:"quantity"`
}

// Cart is the canonical cart shape.
type Cart struct {
	// Cart ID.
	CartID *string `json:"cart_id,omitempty"`
	// Currency code of the transaction (for example, "USD").
	Currency *string `json:"currency,omitempty"`
	// Products in the cart.
	Products []LineItem `json:"products"`
	// Revenue with discounts and coupons added in.
	Value *float64 `json:"value,omitempty"`
}

// Checkout is the canonical checkout shape.
type Checkout struct {
	// Store or affiliation the transaction occurred through.
	Affiliation *string `json:"affiliation,omitempty"`
	// Checkout provider (for example, "stripe").
	CheckoutType *string `json:"checkout_type,omitempty"`
	// Coupon redeemed with the transaction.
	Coupon *string `json:"coupon,omitempty"`
	// Currency code of the transaction.
	Currency *string `json:"currency,omitempty"`
	// Total discount associated with the transaction.
	Discount *float64 `json:"discount,omitempty"`
	// Order/transaction ID.
	OrderID *string `json:"order_id,omitempty"`
	// Order number (for example, "CHORD-000111222").
	OrderName *string `json:"order_name,omitempty"`
	// Products in the checkout.
	Products []LineItem `json:"products"`
	// Revenue excluding shipping and tax.
	Revenue *float64 `json:"revenue,omitempty"`
	// Shipping cost associated with the transaction.
	Shipping *float64 `json:"shipping,omitempty"`
	// Total tax associated with the transaction.
	Tax *float64 `json:"tax,omitempty"`
	// Revenue with discounts and coupons added in.
	Value *float64 `json:"value,omitempty"`
}

// Filter describes one filter applied to a product list.
type Filter struct {
	// Filter type (for example, "department").
	Type *string `json:"type,omitempty"`
	// Filter value (for example, "beauty").
	Value *string `json:"value,omitempty"`
}

// Sort describes one sort applied to a product list.
type Sort struct {
	// Sort type (for example, "price").
	Type *string `json:"type,omitempty"`
	// Sort value (for example, "desc").
	Value *string `json:"value,omitempty"`
}

// Address is a shipping address attached to a subscription event.
type Address struct {
	Address1 *string `json:"address1,omitempty"`
	Address2 *string `json:"address2,omitempty"`
	City     *string `json:"city,omitempty"`
	Company  *string `json:"company,omitempty"`
	Country  *string `json:"country,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	State    *string `json:"state,omitempty"`
	Zipcode  *string `json:"zipcode,omitempty"`
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
