package domain

// Gender is the category tag of a catalog name.
type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
	GenderUnisex Gender = "UNISEX"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderUnisex:
		return true
	}
	return false
}

// GenderFilter narrows the swipe queue to one gender category.
// Unisex names are always eligible regardless of the filter.
type GenderFilter string

const (
	FilterFemale GenderFilter = "FEMALE"
	FilterMale   GenderFilter = "MALE"
	FilterAll    GenderFilter = "ALL"
)

func (f GenderFilter) String() string { return string(f) }

func (f GenderFilter) IsValid() bool {
	switch f {
	case FilterFemale, FilterMale, FilterAll:
		return true
	}
	return false
}

// Matches reports whether a name with the given gender passes the filter.
func (f GenderFilter) Matches(g Gender) bool {
	if f == FilterAll || g == GenderUnisex {
		return true
	}
	return string(f) == string(g)
}

// PresentationOrder controls how the swipe queue is ordered.
type PresentationOrder string

const (
	OrderFixed    PresentationOrder = "FIXED"
	OrderShuffled PresentationOrder = "SHUFFLED"
)

func (o PresentationOrder) String() string { return string(o) }

func (o PresentationOrder) IsValid() bool {
	switch o {
	case OrderFixed, OrderShuffled:
		return true
	}
	return false
}

// Role identifies which half of a couple an account is. Fixed at
// creation/join time and never reassigned.
type Role string

const (
	RolePartner1 Role = "PARTNER1"
	RolePartner2 Role = "PARTNER2"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RolePartner1, RolePartner2:
		return true
	}
	return false
}

// Decision is one member's verdict on a name.
type Decision string

const (
	DecisionApproved  Decision = "APPROVED"
	DecisionRejected  Decision = "REJECTED"
	DecisionUndecided Decision = "UNDECIDED"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionUndecided:
		return true
	}
	return false
}

// IsDecided reports whether the member has made up their mind either way.
func (d Decision) IsDecided() bool {
	return d == DecisionApproved || d == DecisionRejected
}
