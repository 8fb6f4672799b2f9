package model

// Specialty labels offered by the company. The field is free-form in the
// persisted document; these are the values the UI offers.
const (
	SpecialtySecurity = "CCTV y Seguridad"
	SpecialtyNetworks = "Redes y Telecomunicaciones"
	SpecialtySoftware = "Software y Soporte"
	SpecialtyElectric = "Infraestructura Eléctrica"
)

// Specialties lists the selectable specialty labels in display order.
var Specialties = []string{
	SpecialtySecurity,
	SpecialtyNetworks,
	SpecialtySoftware,
	SpecialtyElectric,
}

// Technician is a field technician on the company payroll. Technicians
// have an independent lifecycle with no cross-entity invariants.
type Technician struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}
