package order

import (
	"errors"
	"time"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Quantity bounds in barrels per order.
const (
	MinQuantity = 1
	MaxQuantity = 100
)

// Rating bounds in stars.
const (
	MinRating = 1
	MaxRating = 5
)

// Order is the aggregate root for a water delivery order. It references its
// customer, tank, and (once accepted by a driver) driver by id only; the
// object graph is resolved at query time, never held in memory.
//
// Invariants:
//   - quantity is within [MinQuantity, MaxQuantity]
//   - price equals quantity x the tank's price per barrel at creation time
//   - driverID is nil until a driver accepts and set at most once
//   - status transitions follow the Status state machine; a failed
//     transition leaves the aggregate unchanged
//   - rating and comment are set only in the Delivered status
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	tankID     kernel.UUID

	// driverID is the accepting driver (nil while unassigned or after an
	// admin acceptance)
	driverID *kernel.UUID

	quantity  int
	price     kernel.Money
	orderTime time.Time
	status    Status
	rating    *int
	comment   string

	isConstructed bool
}

// NewOrder creates a Pending order for a customer against a tank. The total
// price is snapshotted from the tank's current price per barrel; later tank
// price edits never touch existing orders.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	tankID kernel.UUID,
	quantity int,
	pricePerBarrel kernel.Money,
	orderTime time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTankID(tankID),
		o.setQuantity(quantity),
		o.setOrderTime(orderTime),
	); err != nil {
		return nil, err
	}

	if pricePerBarrel.IsZero() {
		return nil, errs.NewValueIsRequiredError("pricePerBarrel")
	}
	o.price = pricePerBarrel.MultiplyBy(quantity)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing
// the price snapshot.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	tankID kernel.UUID,
	driverID *kernel.UUID,
	quantity int,
	price kernel.Money,
	orderTime time.Time,
	status Status,
	rating *int,
	comment string,
) (*Order, error) {
	o := &Order{
		driverID:      driverID,
		price:         price,
		rating:        rating,
		comment:       comment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTankID(tankID),
		o.setQuantity(quantity),
		o.setOrderTime(orderTime),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed. Called when
// reconstructing orders from persistence and before every repository write.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TankID returns the tank the order draws from.
func (o *Order) TankID() kernel.UUID {
	return o.tankID
}

// Driver returns the assigned driver's ID, or nil while unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Quantity returns the ordered number of barrels.
func (o *Order) Quantity() int {
	return o.quantity
}

// Price returns the total price snapshotted at creation.
func (o *Order) Price() kernel.Money {
	return o.price
}

// OrderTime returns when the order was placed.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Rating returns the customer's rating in stars, or nil while unrated.
func (o *Order) Rating() *int {
	return o.rating
}

// Comment returns the customer's rating comment, empty while unrated.
func (o *Order) Comment() string {
	return o.comment
}

// AcceptBy assigns the order to the accepting driver and moves it to
// Accepted. Fails if the order is not Pending or already carries a driver;
// region eligibility is the access policy's concern, not the aggregate's.
func (o *Order) AcceptBy(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Accepted.String(),
			errors.New("order already has a driver"))
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// Accept moves a Pending order to Accepted without assigning a driver.
// This is the admin acceptance path.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject moves a Pending or Accepted order to the terminal Rejected state.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves a Pending order to the terminal Cancelled state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivery moves an Accepted order to InDelivery.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteDelivery moves an InDelivery order to the terminal Delivered
// state, after which the customer may rate it.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Rate records the customer's rating for a Delivered order. The rating must
// be within [MinRating, MaxRating]; the comment is optional. Re-rating
// overwrites the previous value.
func (o *Order) Rate(rating int, comment string) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if o.status != Delivered {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Delivered.String(),
			errors.New("only delivered orders can be rated"))
	}

	o.rating = &rating
	o.comment = comment
	return nil
}

// Unassign clears the driver reference and resets the order to Accepted.
// This exists solely for the driver-removal policy: when an admin deletes a
// driver, that driver's non-terminal orders go back to the Accepted pool.
// Terminal orders keep their driver reference as a historical record.
func (o *Order) Unassign() error {
	if o.driverID == nil {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Accepted.String(),
			errors.New("order has no driver"))
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Accepted.String(),
			errors.New("terminal orders keep their driver"))
	}

	o.driverID = nil
	o.status = Accepted
	return nil
}

// IsAssignedTo reports whether the order is assigned to the given driver.
func (o *Order) IsAssignedTo(driverID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(driverID)
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setTankID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.tankID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setOrderTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}
	o.orderTime = t
	return nil
}
