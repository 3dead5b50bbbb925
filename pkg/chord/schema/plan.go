package schema

import (
	"errors"
	"fmt"
)

// ProductInProducts checks that the payload's own product_id and sku appear
// in its products array. Single-product events carry both the flattened
// product fields and a products list; the two must agree.
func ProductInProducts() Schema {
	return Func(func(props map[string]any) Result {
		productID, okID := props["product_id"].(string)
		sku, okSKU := props["sku"].(string)
		if !okID || !okSKU {
			return Result{Err: errors.New("product_id and sku are required")}
		}

		items, ok := props["products"].([]any)
		if !ok {
			return Result{Err: errors.New("products array is required")}
		}

		for _, item := range items {
			p, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if p["product_id"] == productID && p["sku"] == sku {
				return Result{Success: true, Data: props}
			}
		}
		return Result{Err: fmt.Errorf("products must contain the product_id %q and sku %q provided", productID, sku)}
	})
}

// product-bearing payloads flatten the four required product fields.
var productFields = Rules{
	"name":       "required",
	"price":      "required,min=0",
	"product_id": "required",
	"sku":        "required",
	"meta":       "required",
}

// DefaultRegistry returns the chord tracking plan: one or more schemas for
// every event in the catalog. Payloads are validated after the meta block
// is attached, so every rule set requires meta.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("Cart Viewed", Rules{
		"currency": "omitempty,iso4217",
		"value":    "omitempty,min=0",
		"meta":     "required",
	})

	r.MustRegister("Checkout Started", Rules{
		"currency": "omitempty,iso4217",
		"revenue":  "omitempty,min=0",
		"value":    "omitempty,min=0",
		"meta":     "required",
	})
	r.MustRegister("Checkout Step Viewed", Rules{
		"checkout_id": "required",
		"step":        "required,min=1",
		"meta":        "required",
	})
	r.MustRegister("Checkout Step Completed", Rules{
		"checkout_id": "required",
		"step":        "required,min=1",
		"meta":        "required",
	})

	couponRules := Rules{
		"coupon_id":   "omitempty",
		"coupon_name": "omitempty",
		"discount":    "omitempty,min=0",
		"meta":        "required",
	}
	r.MustRegister("Coupon Applied", couponRules)
	r.MustRegister("Coupon Denied", couponRules)
	r.MustRegister("Coupon Entered", couponRules)
	r.MustRegister("Coupon Removed", couponRules)

	r.MustRegister("Email Captured", Rules{
		"email": "omitempty,email",
		"meta":  "required",
	})

	r.MustRegister("Product Added", productFields)
	r.MustRegister("Product Added", ProductInProducts())
	r.MustRegister("Product Removed", productFields)
	r.MustRegister("Product Removed", ProductInProducts())
	r.MustRegister("Product Viewed", productFields)
	r.MustRegister("Product Viewed", ProductInProducts())
	r.MustRegister("Product Clicked", productFields)
	r.MustRegister("Variant Clicked", Rules{
		"name":       "required",
		"price":      "required,min=0",
		"product_id": "required",
		"sku":        "required",
		"quantity":   "required,min=1",
		"meta":       "required",
	})

	r.MustRegister("Product List Viewed", Rules{
		"item_list_id": "omitempty",
		"value":        "min=0",
		"meta":         "required",
	})
	r.MustRegister("Product List Filtered", Rules{
		"item_list_id": "omitempty",
		"meta":         "required",
	})

	r.MustRegister("Products Searched", Rules{
		"currency": "omitempty,iso4217",
		"price":    "omitempty,min=0",
		"meta":     "required",
	})

	r.MustRegister("Signed In", Rules{
		"email": "omitempty,email",
		"meta":  "required",
	})
	r.MustRegister("Signed Out", Rules{
		"email": "omitempty,email",
		"meta":  "required",
	})
	r.MustRegister("Signed Up", Rules{
		"email": "omitempty,email",
		"meta":  "required",
	})
	r.MustRegister("Login Started", Rules{
		"email": "omitempty,email",
		"meta":  "required",
	})

	r.MustRegister("Subscription Cancelled", Rules{
		"email":           "omitempty,email",
		"currency":        "omitempty,iso4217",
		"interval_length": "omitempty,min=1",
		"meta":            "required",
	})

	r.MustRegister("Navigation Clicked", Rules{
		"meta": "required",
	})

	r.MustRegister("Payment Info Entered", Rules{
		"currency": "omitempty,iso4217",
		"step":     "required,min=1",
		"value":    "omitempty,min=0",
		"meta":     "required",
	})

	return r
}
