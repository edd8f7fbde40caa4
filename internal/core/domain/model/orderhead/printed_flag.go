package orderhead

import (
	"strconv"

	"mfgorder/internal/pkg/errs"
)

// PrintedFlag is the documents-printed marker on a manufacturing order header.
// Its domain is exactly {0, 1}.
type PrintedFlag int

const (
	// DocumentsNotPrinted marks a header whose order documents have not been produced.
	DocumentsNotPrinted PrintedFlag = 0

	// DocumentsPrinted marks a header whose order documents have been produced.
	DocumentsPrinted PrintedFlag = 1
)

// NewPrintedFlag creates a PrintedFlag from an integer value.
// Any value other than 0 or 1 is rejected.
func NewPrintedFlag(value int) (PrintedFlag, error) {
	flag := PrintedFlag(value)
	if err := flag.Validate(); err != nil {
		return 0, err
	}
	return flag, nil
}

// Validate checks that the flag is within its {0, 1} domain.
func (f PrintedFlag) Validate() error {
	if f != DocumentsNotPrinted && f != DocumentsPrinted {
		return errs.NewValueIsOutOfRangeError(
			"documentsPrintedFlag",
			int(f),
			int(DocumentsNotPrinted),
			int(DocumentsPrinted),
		)
	}
	return nil
}

// Int returns the flag as its stored integer value.
func (f PrintedFlag) Int() int {
	return int(f)
}

// String returns the flag's stored form ("0" or "1").
// This method implements the fmt.Stringer interface.
func (f PrintedFlag) String() string {
	return strconv.Itoa(int(f))
}
