package gym

import (
	"fmt"
	"slices"
)

var MemberStatus = struct {
	Active    string
	Inactive  string
	Cancelled string
}{
	Active:    "active",
	Inactive:  "inactive",
	Cancelled: "cancelled",
}

var MemberStatuses = []string{
	MemberStatus.Active,
	MemberStatus.Inactive,
	MemberStatus.Cancelled,
}

var InvoiceStatus = struct {
	Pending string
	Paid    string
	Overdue string
	Voided  string
}{
	Pending: "pending",
	Paid:    "paid",
	Overdue: "overdue",
	Voided:  "voided",
}

var InvoiceStatuses = []string{
	InvoiceStatus.Pending,
	InvoiceStatus.Paid,
	InvoiceStatus.Overdue,
	InvoiceStatus.Voided,
}

var AttendanceStatus = struct {
	Registered string
	Attended   string
	Absent     string
}{
	Registered: "registered",
	Attended:   "attended",
	Absent:     "absent",
}

var AttendanceStatuses = []string{
	AttendanceStatus.Registered,
	AttendanceStatus.Attended,
	AttendanceStatus.Absent,
}

// DefaultPlanStatus is used for workout plans created without a status.
const DefaultPlanStatus = "active"

var ReadStatus = struct {
	Unread string
	Read   string
}{
	Unread: "unread",
	Read:   "read",
}

var ReadStatuses = []string{
	ReadStatus.Unread,
	ReadStatus.Read,
}

// ValidateStatus returns an error naming the field when status is not one of allowed.
func ValidateStatus(field, status string, allowed []string) error {
	if slices.Contains(allowed, status) {
		return nil
	}
	return fmt.Errorf("invalid %s: %q", field, status)
}
