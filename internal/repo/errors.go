package repo

import "errors"

// ErrProductNotFound is returned when a barcode does not match any product.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateBarcode is returned when creating a product whose barcode is
// already in the catalog.
var ErrDuplicateBarcode = errors.New("barcode already exists")

// ErrDuplicatedValueUnique is returned when a unique value collides (users).
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")

// ErrUserNotFound is returned when a username is not registered.
var ErrUserNotFound = errors.New("user not found")
