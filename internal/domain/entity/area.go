package entity

// UnknownAreaName is displayed for references to communities that are not loaded.
const UnknownAreaName = "Unknown Area"

// AreaRef is a resolved community reference.
type AreaRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Settlement string `json:"settlement"`
	Ward       string `json:"ward"`
	LGA        string `json:"lga"`
}

// UnknownArea stands in for a stale community reference.
func UnknownArea() AreaRef {
	return AreaRef{Name: UnknownAreaName}
}

// ResolveAreas maps community IDs onto loaded communities in order.
// Stale IDs resolve to UnknownArea rather than being dropped.
func ResolveAreas(ids []string, index map[string]Community) []AreaRef {
	areas := make([]AreaRef, 0, len(ids))
	for _, id := range ids {
		if c, ok := index[id]; ok {
			areas = append(areas, c.Ref())
		} else {
			areas = append(areas, UnknownArea())
		}
	}

	return areas
}

// PrimaryArea is the first resolved area, or the zero AreaRef when there is none.
func PrimaryArea(areas []AreaRef) AreaRef {
	if len(areas) == 0 {
		return AreaRef{}
	}

	return areas[0]
}
