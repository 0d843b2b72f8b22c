package knowledge

// TreatmentPriority classifies where a treatment sits in the care sequence
// for a tumor type. The enumerated values carry an ordinal rank used to
// order treatment results deterministically.
type TreatmentPriority string

const (
	// PriorityPrimary is the first-line treatment.
	PriorityPrimary TreatmentPriority = "Primary"

	// PriorityAdjuvant supplements the primary treatment.
	PriorityAdjuvant TreatmentPriority = "Adjuvant"

	// PriorityEmerging is a newer option without an established place in
	// the care sequence.
	PriorityEmerging TreatmentPriority = "Emerging"

	// PriorityOther covers values outside the enumerated set.
	PriorityOther TreatmentPriority = "Other"
)

// Rank returns the ordinal used for ascending sort: Primary=1, Adjuvant=2,
// everything else 3. The rank ordering is a hard contract — it determines
// which treatment a synthesized report presents first.
func (p TreatmentPriority) Rank() int {
	switch p {
	case PriorityPrimary:
		return 1
	case PriorityAdjuvant:
		return 2
	default:
		return 3
	}
}

// IsValid reports whether the priority is one of the enumerated values.
func (p TreatmentPriority) IsValid() bool {
	switch p {
	case PriorityPrimary, PriorityAdjuvant, PriorityEmerging, PriorityOther:
		return true
	default:
		return false
	}
}

// String returns the priority's string form.
func (p TreatmentPriority) String() string {
	return string(p)
}

// TreatmentPriorities returns all enumerated priority values in rank order.
func TreatmentPriorities() []TreatmentPriority {
	return []TreatmentPriority{PriorityPrimary, PriorityAdjuvant, PriorityEmerging, PriorityOther}
}
