package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"
)

// Supported subcommands, grouped by store:
// - session:  login, register, me, logout
// - catalog:  products, product, featured, bestsellers
// - cart:     cart, cart-add, cart-update, cart-remove, cart-clear
// - wishlist: wishlist, wishlist-add, wishlist-remove
// - orders:   orders, order, place-order
// - reviews:  reviews, my-reviews, review-submit, review-delete
// - account:  verify-email, add-address, set-default-address, pincode

func runSubcommand(ctx context.Context, params *runParams) error {
	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "login":
		return handleLogin(ctx, params, args)
	case "register":
		return handleRegister(ctx, params, args)
	case "me":
		return handleMe(ctx, params)
	case "logout":
		return params.Auth.Logout()
	case "products":
		return handleProducts(ctx, params, args)
	case "product":
		return handleProduct(ctx, params, args)
	case "featured":
		if err := params.Products.FetchFeatured(ctx); err != nil {
			return err
		}

		return printJSON(params.Products.Snapshot().Featured)
	case "bestsellers":
		if err := params.Products.FetchBestsellers(ctx); err != nil {
			return err
		}

		return printJSON(params.Products.Snapshot().Bestsellers)
	case "cart":
		return handleCart(ctx, params)
	case "cart-add":
		return handleCartAdd(ctx, params, args)
	case "cart-update":
		return handleCartUpdate(ctx, params, args)
	case "cart-remove":
		return handleCartRemove(ctx, params, args)
	case "cart-clear":
		if err := params.Cart.Clear(ctx); err != nil {
			return err
		}

		return printJSON(params.Cart.Cart())
	case "wishlist":
		if err := params.Wishlist.Fetch(ctx); err != nil {
			return err
		}

		return printJSON(params.Wishlist.Wishlist())
	case "wishlist-add":
		return handleWishlistAdd(ctx, params, args)
	case "wishlist-remove":
		return handleWishlistRemove(ctx, params, args)
	case "orders":
		return handleOrders(ctx, params, args)
	case "order":
		return handleOrder(ctx, params, args)
	case "place-order":
		return handlePlaceOrder(ctx, params, args)
	case "reviews":
		return handleReviews(ctx, params, args)
	case "my-reviews":
		return handleMyReviews(ctx, params, args)
	case "review-submit":
		return handleReviewSubmit(ctx, params, args)
	case "review-delete":
		return handleReviewDelete(ctx, params, args)
	case "verify-email":
		return handleVerifyEmail(ctx, params, args)
	case "add-address":
		return handleAddAddress(ctx, params, args)
	case "set-default-address":
		return handleSetDefaultAddress(ctx, params, args)
	case "pincode":
		return handlePincode(ctx, params, args)
	default:
		printUsage()

		return fmt.Errorf("unknown command: %s", command)
	}
}

func handleLogin(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := cmd.String("email", "", "Account email")
	password := cmd.String("password", "", "Account password")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Auth.Login(ctx, usecase.LoginInput{Email: *email, Password: *password}); err != nil {
		return err
	}

	return printJSON(params.Auth.Session())
}

func handleRegister(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("register", flag.ExitOnError)
	name := cmd.String("name", "", "Display name")
	email := cmd.String("email", "", "Account email")
	password := cmd.String("password", "", "Account password")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	input := usecase.RegisterInput{Name: *name, Email: *email, Password: *password}
	if err := params.Auth.Register(ctx, input); err != nil {
		return err
	}

	return printJSON(params.Auth.Session())
}

func handleMe(ctx context.Context, params *runParams) error {
	if err := params.Auth.CurrentUser(ctx); err != nil {
		return err
	}

	return printJSON(params.Auth.Session().User)
}

func handleProducts(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("products", flag.ExitOnError)
	search := cmd.String("search", "", "Free-text search")
	category := cmd.String("category", "", "Category filter")
	sort := cmd.String("sort", "", "Sort order")
	minPrice := cmd.Float64("min-price", 0, "Minimum price")
	maxPrice := cmd.Float64("max-price", 0, "Maximum price")
	page := cmd.Int("page", 1, "Page number")
	limit := cmd.Int("limit", 12, "Page size")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	query := gateway.ProductQuery{
		Search:   *search,
		Category: *category,
		Sort:     *sort,
		MinPrice: *minPrice,
		MaxPrice: *maxPrice,
		Page:     *page,
		Limit:    *limit,
	}
	if err := params.Products.FetchProducts(ctx, query); err != nil {
		return err
	}

	snapshot := params.Products.Snapshot()

	return printJSON(map[string]any{
		"products":   snapshot.Products,
		"pagination": snapshot.Pagination,
		"categories": snapshot.Categories,
	})
}

func handleProduct(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("product", flag.ExitOnError)
	id := cmd.String("id", "", "Product identifier")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Products.FetchProduct(ctx, *id); err != nil {
		return err
	}

	return printJSON(params.Products.Snapshot().Current)
}

func handleCart(ctx context.Context, params *runParams) error {
	if err := params.Cart.Fetch(ctx); err != nil {
		return err
	}

	return printJSON(params.Cart.Cart())
}

func handleCartAdd(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("cart-add", flag.ExitOnError)
	id := cmd.String("id", "", "Product identifier")
	qty := cmd.Int("qty", 1, "Quantity")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Cart.Add(ctx, *id, *qty); err != nil {
		return err
	}

	return printJSON(params.Cart.Cart())
}

func handleCartUpdate(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("cart-update", flag.ExitOnError)
	id := cmd.String("id", "", "Product identifier")
	qty := cmd.Int("qty", 1, "New quantity")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Cart.UpdateQuantity(ctx, *id, *qty); err != nil {
		return err
	}

	return printJSON(params.Cart.Cart())
}

func handleCartRemove(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("cart-remove", flag.ExitOnError)
	id := cmd.String("id", "", "Product identifier")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Cart.Remove(ctx, *id); err != nil {
		return err
	}

	return printJSON(params.Cart.Cart())
}

func handleWishlistAdd(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("wishlist-add", flag.ExitOnError)
	id := cmd.String("id", "", "Product identifier")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Wishlist.Add(ctx, *id); err != nil {
		return err
	}

	return printJSON(params.Wishlist.Wishlist())
}

func handleWishlistRemove(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("wishlist-remove", flag.ExitOnError)
	id := cmd.String("id", "", "Product identifier")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Wishlist.Remove(ctx, *id); err != nil {
		return err
	}

	return printJSON(params.Wishlist.Wishlist())
}

func handleOrders(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("orders", flag.ExitOnError)
	page := cmd.Int("page", 1, "Page number")
	limit := cmd.Int("limit", 10, "Page size")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Orders.Fetch(ctx, *page, *limit); err != nil {
		return err
	}

	snapshot := params.Orders.Snapshot()

	return printJSON(map[string]any{
		"orders":     snapshot.Orders,
		"pagination": snapshot.Pagination,
	})
}

func handleOrder(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("order", flag.ExitOnError)
	id := cmd.String("id", "", "Order identifier")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Orders.Get(ctx, *id); err != nil {
		return err
	}

	return printJSON(params.Orders.Snapshot().Current)
}

func handlePlaceOrder(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("place-order", flag.ExitOnError)
	address := cmd.String("address", "", "Shipping address identifier")
	payment := cmd.String("payment", "cod", "Payment method (cod, card, upi)")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	input := usecase.PlaceOrderInput{AddressID: *address, PaymentMethod: *payment}
	if err := params.Orders.Place(ctx, input); err != nil {
		return err
	}

	return printJSON(params.Orders.Snapshot().Current)
}

func handleReviews(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("reviews", flag.ExitOnError)
	product := cmd.String("product", "", "Product identifier")
	page := cmd.Int("page", 1, "Page number")
	limit := cmd.Int("limit", 10, "Page size")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Reviews.FetchForProduct(ctx, *product, *page, *limit); err != nil {
		return err
	}

	return printJSON(params.Reviews.ProductReviews())
}

func handleMyReviews(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("my-reviews", flag.ExitOnError)
	page := cmd.Int("page", 1, "Page number")
	limit := cmd.Int("limit", 10, "Page size")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Reviews.FetchMine(ctx, *page, *limit); err != nil {
		return err
	}

	return printJSON(params.Reviews.MyReviews())
}

func handleReviewSubmit(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("review-submit", flag.ExitOnError)
	product := cmd.String("product", "", "Product identifier")
	order := cmd.String("order", "", "Order that contained the product")
	review := cmd.String("review", "", "Existing review identifier, for updates")
	rating := cmd.Int("rating", 5, "Star rating, 1 to 5")
	title := cmd.String("title", "", "Review title")
	comment := cmd.String("comment", "", "Review text")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	input := usecase.ReviewInput{
		Product: *product,
		Order:   *order,
		Review:  *review,
		Rating:  *rating,
		Title:   *title,
		Comment: *comment,
	}
	if err := params.Reviews.Submit(ctx, input); err != nil {
		return err
	}

	fmt.Println(params.Reviews.ProductStatus().Success)

	return nil
}

func handleReviewDelete(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("review-delete", flag.ExitOnError)
	id := cmd.String("id", "", "Review identifier")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	return params.Reviews.Delete(ctx, *id)
}

// handleVerifyEmail drives the persisted verification flow: without a
// code it opens the flow and requests one, with a code it resumes the
// flow and submits it.
func handleVerifyEmail(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("verify-email", flag.ExitOnError)
	code := cmd.String("code", "", "One-time code from the email")
	reset := cmd.Bool("reset", false, "Discard any saved progress and start over")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := params.Verification.Open(*reset); err != nil {
		return err
	}

	if *code == "" {
		if err := params.Verification.Send(ctx); err != nil {
			return err
		}
		fmt.Println("Verification code sent. Re-run with -code once it arrives.")

		return nil
	}

	if err := params.Verification.SetOTP(*code); err != nil {
		return err
	}
	if err := params.Verification.Verify(ctx); err != nil {
		return err
	}
	fmt.Println("Email verified.")

	return nil
}

// ensureSession restores the session from the stored token when no
// profile has been fetched yet. Address mutations attach the updated
// list to the session's profile, so one must be loaded first.
func ensureSession(ctx context.Context, params *runParams) error {
	if params.Auth.Session().User != nil {
		return nil
	}

	return params.Auth.CurrentUser(ctx)
}

func handleAddAddress(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("add-address", flag.ExitOnError)
	address := cmd.String("address", "", "Street address")
	city := cmd.String("city", "", "City")
	state := cmd.String("state", "", "State")
	code := cmd.String("pincode", "", "Postal pincode")
	isDefault := cmd.Bool("default", false, "Make this the default address")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := ensureSession(ctx, params); err != nil {
		return err
	}

	input := usecase.AddressInput{
		Address:   *address,
		City:      *city,
		State:     *state,
		Pincode:   *code,
		IsDefault: *isDefault,
	}

	// Auto-fill city and state from the pincode when they were omitted.
	if (input.City == "" || input.State == "") && input.Pincode != "" {
		if info, err := params.Pincode.Lookup(ctx, input.Pincode); err == nil {
			if input.City == "" {
				input.City = info.City
			}
			if input.State == "" {
				input.State = info.State
			}
		}
	}

	if err := params.Auth.AddAddress(ctx, input); err != nil {
		return err
	}

	return printJSON(params.Auth.Session().User.Addresses)
}

func handleSetDefaultAddress(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("set-default-address", flag.ExitOnError)
	id := cmd.String("id", "", "Address identifier")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := ensureSession(ctx, params); err != nil {
		return err
	}

	if err := params.Auth.SetDefaultAddress(ctx, *id); err != nil {
		return err
	}

	return printJSON(params.Auth.Session().User.Addresses)
}

func handlePincode(ctx context.Context, params *runParams, args []string) error {
	cmd := flag.NewFlagSet("pincode", flag.ExitOnError)
	code := cmd.String("code", "", "Postal pincode")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	info, err := params.Pincode.Lookup(ctx, *code)
	if err != nil {
		return err
	}

	return printJSON(info)
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: storefront <command> [flags]

Commands:
  login, register, me, logout
  products, product, featured, bestsellers
  cart, cart-add, cart-update, cart-remove, cart-clear
  wishlist, wishlist-add, wishlist-remove
  orders, order, place-order
  reviews, my-reviews, review-submit, review-delete
  verify-email, add-address, set-default-address, pincode

Run "storefront <command> -h" for the flags of a command.`)
}
