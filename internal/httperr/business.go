package httperr

import "errors"

// BusinessError carries a machine-readable code from the domain and use-case
// layers up to the HTTP boundary, where it is mapped to a status.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
