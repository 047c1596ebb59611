package domain

// Store keys for every answer the wizard collects. Scalar keys hold a
// single string value; list keys hold an ordered sequence.
const (
	KeyUserName      = "user:name"
	KeyCompanyName   = "company:name"
	KeyEmployeeCount = "employee:count"
	KeyEmployeeNames = "employee:names" // list
	KeyTruckCount    = "truck:count"
	KeyTruckVolumes  = "truck:volumes" // list
	KeyTruckType     = "truck:type"
)

// Profile is the complete set of answers collected over one session.
// Scalars are single-assignment; the lists are append-only and their
// lengths match the corresponding counts by the time a recap is built.
type Profile struct {
	UserName      string
	CompanyName   string
	EmployeeCount int
	EmployeeNames []string
	TruckCount    int
	TruckVolumes  []float64
	TruckType     string
}

// Complete reports whether the profile satisfies the count/length
// invariants required before a recap may be rendered.
func (p *Profile) Complete() bool {
	return p.UserName != "" &&
		p.CompanyName != "" &&
		p.EmployeeCount > 0 &&
		len(p.EmployeeNames) == p.EmployeeCount &&
		p.TruckCount > 0 &&
		len(p.TruckVolumes) == p.TruckCount &&
		p.TruckType != ""
}
