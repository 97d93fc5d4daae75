// jamfpro/models.go
// The jamfpro package holds the typed models for Classic API objects and the
// endpoint helpers used to fetch them.
package jamfpro

// ComputerSummary is one entry of the computer collection listing.
type ComputerSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Computer is the full inventory record for one managed device. Only the
// subsections the tool consumes are modelled.
type Computer struct {
	General  ComputerGeneral  `json:"general"`
	Hardware ComputerHardware `json:"hardware"`
}

// ComputerGeneral carries the identity and check-in subsection of a computer record.
type ComputerGeneral struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	LastContactTime  string           `json:"last_contact_time"`
	ManagementStatus ManagementStatus `json:"management_status"`
}

// ManagementStatus carries the enrollment flags of a computer record.
// EnrolledViaDEP is a pointer so that a record missing the flag reads as
// unknown rather than false.
type ManagementStatus struct {
	EnrolledViaDEP *bool `json:"enrolled_via_dep"`
}

// DEPStatus renders the DEP enrollment flag for display, with "unknown" for
// records that do not carry it.
func (m ManagementStatus) DEPStatus() string {
	if m.EnrolledViaDEP == nil {
		return "unknown"
	}
	if *m.EnrolledViaDEP {
		return "true"
	}
	return "false"
}

// ComputerHardware carries the hardware subsection of a computer record.
type ComputerHardware struct {
	OSVersion string `json:"os_version"`
}

// PolicySummary is one entry of a policy collection listing.
type PolicySummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Policy is the full record for one policy. Scope and package configuration are
// optional on the server side and may be empty.
type Policy struct {
	General              PolicyGeneral        `json:"general"`
	Scope                PolicyScope          `json:"scope"`
	PackageConfiguration PackageConfiguration `json:"package_configuration"`
}

// PolicyGeneral carries the identity subsection of a policy.
type PolicyGeneral struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// PolicyScope lists the computer groups a policy is scoped to.
type PolicyScope struct {
	ComputerGroups []NamedObject `json:"computer_groups"`
}

// PackageConfiguration lists the packages a policy installs.
type PackageConfiguration struct {
	Packages []NamedObject `json:"packages"`
}

// NamedObject is the generic id/name pair used across Classic API subsections.
type NamedObject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category is a policy category on the server.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FirstGroupName returns the first scoped computer-group name, or "none".
func (p *Policy) FirstGroupName() string {
	if len(p.Scope.ComputerGroups) == 0 {
		return "none"
	}
	return p.Scope.ComputerGroups[0].Name
}

// FirstPackageName returns the first configured package name, or "none".
func (p *Policy) FirstPackageName() string {
	if len(p.PackageConfiguration.Packages) == 0 {
		return "none"
	}
	return p.PackageConfiguration.Packages[0].Name
}

// collection wrappers: the Classic API nests every response under a
// type-specific key.
type computerListWrapper struct {
	Computers []ComputerSummary `json:"computers"`
}

type computerWrapper struct {
	Computer Computer `json:"computer"`
}

type policyListWrapper struct {
	Policies []PolicySummary `json:"policies"`
}

type policyWrapper struct {
	Policy Policy `json:"policy"`
}

type categoryListWrapper struct {
	Categories []Category `json:"categories"`
}
