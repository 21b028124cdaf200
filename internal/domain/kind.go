package domain

// Kind represents the domain object a calendar record stands for
type Kind string

const (
	KindJob     Kind = "job"
	KindItem    Kind = "item"
	KindVehicle Kind = "vehicle"
	KindCrew    Kind = "crew"
)

// IsValid returns true if the kind is one of the known values
func (k Kind) IsValid() bool {
	switch k {
	case KindJob, KindItem, KindVehicle, KindCrew:
		return true
	}
	return false
}

// KindForCategory derives the record kind from the period category
// Unrecognized categories (including program) map to the job kind
func KindForCategory(c Category) Kind {
	switch c {
	case CategoryTransport:
		return KindVehicle
	case CategoryEquipment:
		return KindItem
	case CategoryCrew:
		return KindCrew
	default:
		return KindJob
	}
}
