package common

// Enum is a declared enumeration.  The discriminant of each variant is its
// index in declaration order.
type Enum struct {
	Name     string
	Variants []string

	indices map[string]int
}

// NewEnum creates a new enum with the given variants.
func NewEnum(name string, variants []string) *Enum {
	e := &Enum{
		Name:     name,
		Variants: variants,
		indices:  make(map[string]int, len(variants)),
	}

	for i, v := range variants {
		if _, ok := e.indices[v]; !ok {
			e.indices[v] = i
		}
	}

	return e
}

// Discriminant returns the discriminant of the named variant.
func (e *Enum) Discriminant(variant string) (int, bool) {
	n, ok := e.indices[variant]
	return n, ok
}

// EnumTable maps enum names to their definitions.
type EnumTable struct {
	enums map[string]*Enum
}

// preludeEnums are available in every program unless a declaration of the same
// name replaces them.
var preludeEnums = []*Enum{
	NewEnum("Color", []string{"Red", "Green", "Blue"}),
	NewEnum("Status", []string{"Success", "Warning", "Error"}),
}

// NewEnumTable creates an enum table seeded with the prelude enums.
func NewEnumTable() *EnumTable {
	et := &EnumTable{enums: make(map[string]*Enum)}

	for _, e := range preludeEnums {
		et.enums[e.Name] = e
	}

	return et
}

// Define adds or replaces an enum.
func (et *EnumTable) Define(e *Enum) {
	et.enums[e.Name] = e
}

// Lookup returns the enum of the given name.
func (et *EnumTable) Lookup(name string) (*Enum, bool) {
	e, ok := et.enums[name]
	return e, ok
}

// Discriminant returns the discriminant of `enum.variant`.
func (et *EnumTable) Discriminant(enum, variant string) (int, bool) {
	if e, ok := et.enums[enum]; ok {
		return e.Discriminant(variant)
	}

	return 0, false
}

// Names returns the names of all enums in the table.
func (et *EnumTable) Names() []string {
	names := make([]string, 0, len(et.enums))
	for name := range et.enums {
		names = append(names, name)
	}

	return names
}
