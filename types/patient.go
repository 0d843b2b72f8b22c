package types

// PatientUnknown is the placeholder used for patient fields that were not
// provided by the caller.
const PatientUnknown = "N/A"

// PatientInfo carries optional patient metadata attached to an analysis run.
// All fields are free text; age is a string so callers can pass ranges or
// leave it unset.
type PatientInfo struct {
	Name   string `json:"name,omitempty"`
	Age    string `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// WithDefaults returns a copy with every empty field replaced by
// PatientUnknown. Report prompts always present all three fields.
func (p PatientInfo) WithDefaults() PatientInfo {
	if p.Name == "" {
		p.Name = PatientUnknown
	}
	if p.Age == "" {
		p.Age = PatientUnknown
	}
	if p.Gender == "" {
		p.Gender = PatientUnknown
	}
	return p
}
