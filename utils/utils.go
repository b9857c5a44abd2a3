package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the calendar-date format used everywhere in the API.
const DateLayout = "2006-01-02"

// CalculateWorkingDays returns the inclusive day count between two calendar
// dates. Missing or unparseable dates and inverted ranges count as 0. The
// arithmetic is date-only; time of day never enters the calculation.
func CalculateWorkingDays(startDate, endDate string) int {
	if startDate == "" || endDate == "" {
		return 0
	}
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return 0
	}
	if start.After(end) {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	return days
}

// CalculateAmountToPay pro-rates a monthly salary over the worked days using
// a fixed 30-day month. Non-positive inputs yield 0.
func CalculateAmountToPay(workingDays int, monthlySalary *float64) float64 {
	if monthlySalary == nil || *monthlySalary <= 0 || workingDays <= 0 {
		return 0
	}
	return float64(workingDays) * *monthlySalary / 30
}

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a nullable amount as en-US USD with grouping,
// e.g. $1,234.50. Nil renders as $0.00.
func FormatCurrency(value *float64) string {
	v := 0.0
	if value != nil {
		v = *value
	}
	return usdPrinter.Sprintf("$%.2f", v)
}

// GenerateClientID builds a client id of the form MMYY-XXXX where XXXX is a
// random 4-character uppercase suffix.
func GenerateClientID() string {
	now := time.Now()
	random := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:4]
	return fmt.Sprintf("%02d%02d-%s", int(now.Month()), now.Year()%100, random)
}

// GenerateProjectID returns a new project identity. Timestamp granularity is
// the only collision guard, which is acceptable for single-operator use.
func GenerateProjectID() string {
	return fmt.Sprintf("PROJ-%d", time.Now().UnixMilli())
}

// GenerateStaffID returns a new staff identity.
func GenerateStaffID() string {
	return fmt.Sprintf("staff-%d", time.Now().UnixMilli())
}

// GenerateResourceID returns a new resource assignment identity.
func GenerateResourceID() string {
	return fmt.Sprintf("res-%d", time.Now().UnixMilli())
}

// GenerateTrainingID returns a new training identity.
func GenerateTrainingID() string {
	return fmt.Sprintf("tr-%d", time.Now().UnixMilli())
}
