package order

import (
	"errors"

	"salesorders/internal/pkg/guard"
)

// ErrShipmentAddressIsNotConstructed is returned when a ShipmentAddress was not
// created through the NewShipmentAddress constructor.
var ErrShipmentAddressIsNotConstructed = errors.New(
	"ShipmentAddress must be created via NewShipmentAddress constructor",
)

// ShipmentAddress is the delivery destination of an order. Exactly one address
// is owned by each order; updates replace it wholesale.
type ShipmentAddress struct {
	recipientName   string
	companyName     string
	phoneNumber     string
	streetLine1     string
	streetLine2     string
	city            string
	stateOrProvince string
	postalCode      string
	country         string
	landmark        string

	guard guard.ConstructorGuard
}

// NewShipmentAddress creates a validated shipment address. Recipient name,
// phone number, first street line, city, state/province, postal code and
// country are required; company name, second street line and landmark are
// optional.
func NewShipmentAddress(
	recipientName, companyName, phoneNumber,
	streetLine1, streetLine2, city, stateOrProvince, postalCode, country, landmark string,
) (ShipmentAddress, error) {
	addr := ShipmentAddress{
		recipientName:   recipientName,
		companyName:     companyName,
		phoneNumber:     phoneNumber,
		streetLine1:     streetLine1,
		streetLine2:     streetLine2,
		city:            city,
		stateOrProvince: stateOrProvince,
		postalCode:      postalCode,
		country:         country,
		landmark:        landmark,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireField("recipient name", recipientName),
		requireField("phone number", phoneNumber),
		requireField("street line 1", streetLine1),
		requireField("city", city),
		requireField("state or province", stateOrProvince),
		requireField("postal code", postalCode),
		requireField("country", country),
	); err != nil {
		return ShipmentAddress{}, err
	}

	return addr, nil
}

// RestoreShipmentAddress reconstructs an address from persistence without
// re-running field validation.
func RestoreShipmentAddress(
	recipientName, companyName, phoneNumber,
	streetLine1, streetLine2, city, stateOrProvince, postalCode, country, landmark string,
) ShipmentAddress {
	return ShipmentAddress{
		recipientName:   recipientName,
		companyName:     companyName,
		phoneNumber:     phoneNumber,
		streetLine1:     streetLine1,
		streetLine2:     streetLine2,
		city:            city,
		stateOrProvince: stateOrProvince,
		postalCode:      postalCode,
		country:         country,
		landmark:        landmark,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the address was created through the constructor.
func (a ShipmentAddress) Validate() error {
	return a.guard.Validate(ErrShipmentAddressIsNotConstructed)
}

// RecipientName returns the name of the person receiving the shipment.
func (a ShipmentAddress) RecipientName() string { return a.recipientName }

// CompanyName returns the optional company name.
func (a ShipmentAddress) CompanyName() string { return a.companyName }

// PhoneNumber returns the recipient's contact number.
func (a ShipmentAddress) PhoneNumber() string { return a.phoneNumber }

// StreetLine1 returns the first street address line.
func (a ShipmentAddress) StreetLine1() string { return a.streetLine1 }

// StreetLine2 returns the optional second street address line.
func (a ShipmentAddress) StreetLine2() string { return a.streetLine2 }

// City returns the city.
func (a ShipmentAddress) City() string { return a.city }

// StateOrProvince returns the state or province.
func (a ShipmentAddress) StateOrProvince() string { return a.stateOrProvince }

// PostalCode returns the postal code.
func (a ShipmentAddress) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a ShipmentAddress) Country() string { return a.country }

// Landmark returns the optional delivery landmark hint.
func (a ShipmentAddress) Landmark() string { return a.landmark }
