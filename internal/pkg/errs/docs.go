// Package errs provides the typed errors shared by the depot domain and its adapters.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing (empty brand, empty order ID)
//   - ValueIsInvalidError: a value breaks a business rule (driver name with digits)
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds (order weight)
//   - ObjectNotFoundError: a driver, vehicle or order is not tracked by the depot
//
// Each type pairs a sentinel (ErrValueIsRequired, ...) with a struct carrying
// the details. Constructors come with and without a cause, and Unwrap returns
// the sentinel so errors.Is works across error chains and errors.Join results.
package errs
