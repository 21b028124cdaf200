package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default record titles for periods without a title
// The fallback depends on the query variant, not only on the record kind:
// the company-wide query uses the generic "Event" for all records
const (
	FallbackTitleTransport = "Transport"
	FallbackTitleEquipment = "Equipment"
	FallbackTitleCrew      = "Crew assignment"
	FallbackTitleProgram   = "Program"
	FallbackTitleEvent     = "Event"
)

// Business validation constants
const (
	MaxTitleLength = 200
	MaxNotesLength = 500
)

// Categories список всех известных категорий периодов
var Categories = []Category{
	CategoryProgram,
	CategoryEquipment,
	CategoryCrew,
	CategoryTransport,
}

// Kinds список всех известных типов записей календаря
var Kinds = []Kind{
	KindJob,
	KindItem,
	KindVehicle,
	KindCrew,
}
