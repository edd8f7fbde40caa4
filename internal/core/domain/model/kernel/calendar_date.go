package kernel

import (
	"strconv"
	"time"

	"mfgorder/internal/pkg/errs"
	"mfgorder/internal/pkg/guard"
)

// calendarDateLayout is the 8-digit numeric date form used by the order header store.
const calendarDateLayout = "20060102"

const (
	// CalendarDateMin is the minimum representable date (year 1000).
	CalendarDateMin = 10000101
	// CalendarDateMax is the maximum representable date (year 9999).
	CalendarDateMax = 99991231
)

// ErrCalendarDateIsNotConstructed is returned when attempting to use an improperly
// initialized CalendarDate. Dates must be created via NewCalendarDate or
// CalendarDateFromTime to ensure validity.
var ErrCalendarDateIsNotConstructed = errs.NewValueIsRequiredError(
	"calendar date must be created via NewCalendarDate or CalendarDateFromTime constructors")

// CalendarDate is a date in the 8-digit numeric YYYYMMDD form the order header
// store uses for its date columns. It is an immutable value object; the zero
// value is invalid and fails validation.
//
// Example:
//
//	date, err := kernel.NewCalendarDate(20260825)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(date) // Output: 20260825
type CalendarDate struct { //nolint:recvcheck //using for validation
	yyyymmdd int

	guard guard.ConstructorGuard
}

// NewCalendarDate creates a CalendarDate from an 8-digit numeric value.
// The value must denote a real calendar day: 20260230 is rejected even though
// it is eight digits.
//
// Returns:
//   - CalendarDate: A valid date instance
//   - error: Validation error if the value is out of range or not a real day
func NewCalendarDate(yyyymmdd int) (CalendarDate, error) {
	if yyyymmdd < CalendarDateMin || yyyymmdd > CalendarDateMax {
		return CalendarDate{}, errs.NewValueIsOutOfRangeError("date", yyyymmdd, CalendarDateMin, CalendarDateMax)
	}

	if _, err := time.Parse(calendarDateLayout, strconv.Itoa(yyyymmdd)); err != nil {
		return CalendarDate{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}

	return CalendarDate{
		yyyymmdd: yyyymmdd,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// CalendarDateFromTime converts a time.Time to its CalendarDate in the time's location.
// The conversion cannot fail: every time.Time names a real calendar day.
//
// Example:
//
//	today := kernel.CalendarDateFromTime(time.Now())
func CalendarDateFromTime(t time.Time) CalendarDate {
	year, month, day := t.Date()
	return CalendarDate{
		yyyymmdd: year*10000 + int(month)*100 + day,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate checks if the CalendarDate was properly constructed using a constructor.
func (d CalendarDate) Validate() error {
	return d.guard.Validate(ErrCalendarDateIsNotConstructed)
}

// Int returns the date as its 8-digit numeric value, e.g. 20260825.
func (d CalendarDate) Int() int {
	return d.yyyymmdd
}

// String returns the date in YYYYMMDD form.
// This method implements the fmt.Stringer interface.
func (d CalendarDate) String() string {
	return strconv.Itoa(d.yyyymmdd)
}

// Time returns the date as a time.Time at midnight UTC.
// Calling Time on an improperly constructed date returns the zero time.
func (d CalendarDate) Time() time.Time {
	t, err := time.Parse(calendarDateLayout, strconv.Itoa(d.yyyymmdd))
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsEqual compares two dates for equality.
// Both dates must be properly constructed for the comparison to succeed.
func (d CalendarDate) IsEqual(other CalendarDate) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return d.yyyymmdd == other.yyyymmdd, nil
}
