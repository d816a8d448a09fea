package domain

// MaxAmenityNameLength bounds Amenity.Name.
const MaxAmenityNameLength = 50

// Amenity is a feature a place can offer, such as "Wi-Fi".
type Amenity struct {
	Audit
	Name string `json:"name"`
}

// NewAmenity creates a validated Amenity with a fresh identity.
func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{Audit: newAudit(), Name: name}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the amenity's invariants.
func (a *Amenity) Validate() error {
	return firstError(
		a.Audit.validate(),
		requireText("name", a.Name),
		maxLength("name", a.Name, MaxAmenityNameLength),
	)
}

// Update applies the recognized fields of p.
func (a *Amenity) Update(p Patch) error {
	next := *a
	if err := amenityFields.apply(&next, p); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.touch()
	*a = next
	return nil
}

var amenityFields = fieldSet[Amenity]{
	"name": func(a *Amenity, v any) error {
		s, err := asString("name", v)
		a.Name = s
		return err
	},
}
