/*
Package chord formats and dispatches e-commerce analytics events.

# Overview

chord is a Go client for sending a fixed catalog of commerce events
(cart, checkout, product, coupon, account and subscription activity) to
any customer data platform. The client owns event payload shapes and
dispatch mechanics; the caller owns its domain model and teaches the
client to read it through object formatters.

The client is generic over the caller's cart, checkout, line item and
product types:
  - Caller types flow untouched into the configured formatters
  - Payloads are canonical snake_case property maps
  - Every dispatch carries a meta block identifying the store
  - Delivery runs through whatever CDP client the caller plugs in

# Basic Usage

Configure formatters for your own domain types, then track events:

	type ShopProduct struct {
	    ID, SKU, Title string
	    Cents          int
	}

	formatters := chord.Formatters[ShopCart, ShopCheckout, ShopLine, ShopProduct]{
	    Objects: chord.ObjectFormatters[ShopCart, ShopCheckout, ShopLine, ShopProduct]{
	        Product: func(in chord.ProductInput[ShopProduct]) chord.Product {
	            return chord.Product{
	                Name:      in.Product.Title,
	                Price:     float64(in.Product.Cents) / 100,
	                ProductID: in.Product.ID,
	                SKU:       in.Product.SKU,
	                Position:  in.Position,
	            }
	        },
	        // Cart, Checkout and LineItem formatters as well.
	    },
	}

	client, err := chord.New(chord.Config[ShopCart, ShopCheckout, ShopLine, ShopProduct]{
	    CDP:        segmentClient,
	    Formatters: formatters,
	    Metadata: chord.Metadata{
	        Ownership: chord.OwnershipMetadata{StoreID: "store-1"},
	        Platform:  chord.PlatformMetadata{Name: "shop", Type: "web"},
	    },
	})
	if err != nil {
	    log.Fatal(err)
	}

	client.TrackProductAdded(chord.ProductAddedInput[ShopCart, ShopProduct]{
	    Cart:    cart,
	    Product: chord.ProductInput[ShopProduct]{Product: p, Quantity: chord.Int(2)},
	}, nil)

Track returns a *Completion that resolves when the CDP acknowledges
delivery (or immediately when the CDP cannot track). Callers that need to
flush before exit can wait on it:

	done := client.TrackSignedOut(chord.SignedOutInput{Email: chord.String(email)}, nil)
	done.Wait(ctx)

# CDP Clients

Any value can serve as the CDP client. The dispatch core probes it for
the capability interfaces in the cdp subpackage (Tracker, Identifier,
Pager, Resetter) and silently skips operations the client does not
implement. Pass the client directly in Config.CDP, or lazily through
Config.CDPProvider when it is not ready at construction time; the
provider is re-invoked on every call.

# Event Formatters

Per-event override formatters rewrite a finished payload before
dispatch. The override receives the builder input and the canonical
payload, and its return value replaces the payload outright:

	Events: chord.EventFormatters[ShopCart, ShopCheckout, ShopLine, ShopProduct]{
	    ProductAdded: func(in chord.ProductAddedInput[ShopCart, ShopProduct], p chord.ProductAdded) chord.ProductAdded {
	        p.Value = p.Value * 1.1
	        return p
	    },
	}

# Debug Mode

With Config.Debug set, every tracked payload is checked against the
tracking plan in the schema subpackage before dispatch. Violations are
logged and counted but never block delivery:

	client, err := chord.New(chord.Config[...]{
	    CDP:   recorder,
	    Debug: true,
	    ...
	})

Use Validate to run the same checks directly:

	for _, res := range client.Validate(chord.EventProductAdded, props) {
	    if !res.Success {
	        log.Println(res.Err)
	    }
	}

# Null Stripping

Payloads are pruned of null values before dispatch unless
Config.StripNull is explicitly set to false. Pruning recurses through
nested objects and arrays; empty objects and arrays survive.

# Thread Safety

  - Client is safe for concurrent use
  - Completion is safe for concurrent use
  - schema.Registry is safe for concurrent use
  - journal.Store implementations are safe for concurrent use

# Subpackages

  - cdp: CDP capability interfaces and dispatch options
  - config: file and environment configuration loading
  - schema: tracking plan rules and validation
  - journal: local event journal (memory, SQLite)
  - observability: metrics and tracing helpers
*/
package chord
