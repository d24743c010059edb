package models

// School identifies a participating school. The set is fixed; every request
// carrying any other value is rejected before storage is touched.
type School string

const (
	SchoolWLHS School = "wlhs"
	SchoolWVHS School = "wvhs"
)

// Schools lists every known school code.
func Schools() []School {
	return []School{SchoolWLHS, SchoolWVHS}
}

// ValidSchool reports whether the code belongs to the fixed set.
func ValidSchool(code string) bool {
	switch School(code) {
	case SchoolWLHS, SchoolWVHS:
		return true
	default:
		return false
	}
}
