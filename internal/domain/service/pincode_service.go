package service

import "context"

// PincodeInfo is the locality information resolved from a postal pincode.
type PincodeInfo struct {
	City  string
	State string
}

// PincodeLookup resolves a postal pincode to city and state for address
// auto-fill. The lookup is best-effort: callers ignore failures and let
// the user type the fields by hand.
type PincodeLookup interface {
	Lookup(ctx context.Context, pincode string) (*PincodeInfo, error)
}
