package market

import (
	"fmt"

	"github.com/skillmarket/libskillmarket-go/codec"
	"github.com/skillmarket/libskillmarket-go/state"
)

// listSkill creates a new listing.
//
// Calldata: string contentLocator | uint256 price | id32 paymentToken | string secret.
// Returns:  uint256 listingId.
func (c *Contract) listSkill(in *invocation, args *codec.Reader) ([]byte, error) {
	locator, err := args.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: contentLocator: %w", ErrBadCalldata, err)
	}
	price, err := args.ReadU256()
	if err != nil {
		return nil, fmt.Errorf("%w: price: %w", ErrBadCalldata, err)
	}
	paymentToken, err := args.ReadAddress()
	if err != nil {
		return nil, fmt.Errorf("%w: paymentToken: %w", ErrBadCalldata, err)
	}
	secret, err := args.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: secret: %w", ErrBadCalldata, err)
	}

	if price.IsZero() {
		return nil, ErrZeroPrice
	}

	id, err := in.reg.AllocateID()
	if err != nil {
		return nil, err
	}
	err = in.reg.PutListing(id, &state.Listing{
		Creator:        in.caller,
		Price:          price,
		PaymentToken:   paymentToken,
		ContentLocator: locator,
		Secret:         secret,
		Active:         true,
	})
	if err != nil {
		return nil, err
	}

	if err := in.emit(&SkillListedEvent{ListingID: id, Creator: in.caller, Price: price}); err != nil {
		return nil, err
	}

	w := codec.NewWriter(codec.U256Len)
	w.WriteU256(id)
	return w.Bytes(), nil
}

// buySkill purchases an active listing. Payment moves from the caller to the
// listing's creator through the token contract; the caller must have granted
// the marketplace a sufficient prior allowance.
//
// The listing stays active afterwards — a listing may be bought any number
// of times by any callers. The listing state is not re-checked after the
// token contract returns.
//
// Calldata: uint256 listingId.
// Returns:  bool true.
func (c *Contract) buySkill(in *invocation, args *codec.Reader) ([]byte, error) {
	id, err := args.ReadU256()
	if err != nil {
		return nil, fmt.Errorf("%w: listingId: %w", ErrBadCalldata, err)
	}

	listing, found, err := in.reg.GetListing(id)
	if err != nil {
		return nil, err
	}
	if !found || !listing.Active {
		return nil, fmt.Errorf("%w: id %s", ErrListingNotActive, id)
	}

	err = c.mover.TransferFrom(in.ctx, listing.PaymentToken, in.caller, listing.Creator, listing.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	if err := in.emit(&SkillPurchasedEvent{ListingID: id, Buyer: in.caller, Creator: listing.Creator}); err != nil {
		return nil, err
	}

	w := codec.NewWriter(1)
	w.WriteBool(true)
	return w.Bytes(), nil
}

// getListing returns the public fields of a listing. The secret is never
// part of the response; it only ever surfaces through purchase events.
// A never-created id yields an all-zero record rather than an error.
//
// Calldata: uint256 listingId.
// Returns:  id32 creator | string contentLocator | uint256 price |
//           id32 paymentToken | bool isActive.
func (c *Contract) getListing(in *invocation, args *codec.Reader) ([]byte, error) {
	id, err := args.ReadU256()
	if err != nil {
		return nil, fmt.Errorf("%w: listingId: %w", ErrBadCalldata, err)
	}

	listing, found, err := in.reg.GetListing(id)
	if err != nil {
		return nil, err
	}
	if !found {
		listing = &state.Listing{}
	}

	w := codec.NewWriter(2*codec.AddressLen + codec.U256Len + 1 + 2 + len(listing.ContentLocator))
	w.WriteAddress(listing.Creator)
	if err := w.WriteString(listing.ContentLocator); err != nil {
		return nil, err
	}
	w.WriteU256(listing.Price)
	w.WriteAddress(listing.PaymentToken)
	w.WriteBool(listing.Active)
	return w.Bytes(), nil
}

// delistSkill deactivates a listing. Only the original creator may delist,
// and only once; the flag never returns to active.
//
// Calldata: uint256 listingId.
// Returns:  bool true.
func (c *Contract) delistSkill(in *invocation, args *codec.Reader) ([]byte, error) {
	id, err := args.ReadU256()
	if err != nil {
		return nil, fmt.Errorf("%w: listingId: %w", ErrBadCalldata, err)
	}

	// A missing record reads as a zero-valued one, so delisting a
	// never-created id fails the creator check below.
	var creator codec.Address
	active := false
	listing, found, err := in.reg.GetListing(id)
	if err != nil {
		return nil, err
	}
	if found {
		creator = listing.Creator
		active = listing.Active
	}

	if in.caller != creator {
		return nil, fmt.Errorf("%w: id %s", ErrNotCreator, id)
	}
	if !active {
		return nil, fmt.Errorf("%w: id %s", ErrAlreadyInactive, id)
	}

	if err := in.reg.SetActive(id, false); err != nil {
		return nil, err
	}

	w := codec.NewWriter(1)
	w.WriteBool(true)
	return w.Bytes(), nil
}
