package codec

import (
	"fmt"
	"strings"
)

// Shape identifies which host record layout the codec reads and writes.
type Shape int

const (
	// ShapeModern is the record layout that carries a temperature modifier.
	ShapeModern Shape = iota

	// ShapeLegacy is the older layout without a temperature modifier. The
	// codec ignores the member on decode and omits it on encode.
	ShapeLegacy
)

var shapeNames = map[Shape]string{
	ShapeModern: "modern",
	ShapeLegacy: "legacy",
}

// ParseShape resolves "modern" or "legacy" case-insensitively. An empty
// string selects [ShapeModern].
func ParseShape(s string) (Shape, error) {
	if s == "" {
		return ShapeModern, nil
	}
	for shape, name := range shapeNames {
		if strings.EqualFold(name, s) {
			return shape, nil
		}
	}
	return ShapeModern, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// HasTemperatureModifier reports whether records of this shape carry the
// temperature modifier.
func (s Shape) HasTemperatureModifier() bool {
	return s != ShapeLegacy
}
