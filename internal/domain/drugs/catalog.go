package drugs

import (
	"fmt"
	"strings"
)

// Catalog es una lista de solo lectura de drogas, indexada por id y por nombre.
type Catalog struct {
	items []Drug
	index map[string]int
}

// NewCatalog valida las invariantes de cada droga y construye el índice.
func NewCatalog(items []Drug) (*Catalog, error) {
	c := &Catalog{
		items: make([]Drug, 0, len(items)),
		index: make(map[string]int, len(items)*2),
	}

	for _, d := range items {
		d.ID = strings.TrimSpace(d.ID)
		d.Name = strings.TrimSpace(d.Name)

		if err := Validate(d); err != nil {
			return nil, err
		}

		for _, key := range []string{d.ID, d.Name} {
			k := normalizeKey(key)
			// id y nombre pueden coincidir ("dopamine" / "Dopamine")
			if i, dup := c.index[k]; dup && i != len(c.items) {
				return nil, fmt.Errorf("%w: duplicate drug key %q", ErrInvalidCatalog, key)
			}
			c.index[k] = len(c.items)
		}

		c.items = append(c.items, cloneDrug(d))
	}

	return c, nil
}

// Validate chequea las invariantes de una droga.
func Validate(d Drug) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, d.Name, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: drug name required", ErrInvalidCatalog)
	}
	if strings.TrimSpace(d.ID) == "" {
		return invalid("id required")
	}

	f := d.StandardFormulation
	if !f.Unit.Valid() {
		return invalid("unknown formulation unit %q", f.Unit)
	}
	if f.Amount <= 0 {
		return invalid("standard amount must be positive")
	}
	if f.Volume <= 0 {
		return invalid("standard volume must be positive")
	}

	dos := d.Dosing
	if !dos.Unit.Valid() {
		return invalid("unknown dose unit %q", dos.Unit)
	}
	if dos.Min <= 0 || dos.Max <= 0 {
		return invalid("dosing range must be positive")
	}
	if dos.Min > dos.Max {
		return invalid("dosing min %s greater than max %s", formatNumber(dos.Min), formatNumber(dos.Max))
	}
	if dos.IsWeightBased != dos.Unit.WeightBased() {
		return invalid("weight-based flag does not match dose unit %s", dos.Unit)
	}
	if (dos.Unit == DoseUnitsPerMin) != (f.Unit == UnitUnits) {
		return invalid("dose unit %s does not match formulation unit %s", dos.Unit, f.Unit)
	}

	return nil
}

// Lookup busca por id o nombre (sin distinguir mayúsculas).
func (c *Catalog) Lookup(key string) (Drug, bool) {
	if c == nil {
		return Drug{}, false
	}
	i, ok := c.index[normalizeKey(key)]
	if !ok {
		return Drug{}, false
	}
	return cloneDrug(c.items[i]), true
}

// All devuelve una copia en el orden del catálogo.
func (c *Catalog) All() []Drug {
	if c == nil {
		return nil
	}
	out := make([]Drug, 0, len(c.items))
	for _, d := range c.items {
		out = append(out, cloneDrug(d))
	}
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cloneDrug(d Drug) Drug {
	d.Brands = append([]string(nil), d.Brands...)
	d.ConcentrationsAvailable = append([]string(nil), d.ConcentrationsAvailable...)
	return d
}
