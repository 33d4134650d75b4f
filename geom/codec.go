package geom

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeFlat copies vals into dst in order. The types in this package
// encode as flat arrays of numbers in field order rather than as
// objects:
//
//	Point     [x, y]
//	Vector    [dx, dy]
//	Size      [width, height]
//	Rect      [x, y, width, height]
//	Transform [m11, m12, m21, m22, tX, tY]
//
// JSON has no representation for infinities, so the null and infinite
// rectangles can only be encoded as YAML.
func decodeFlat(kind string, vals []float64, dst ...*float64) error {
	if len(vals) != len(dst) {
		return fmt.Errorf("decode %v: want %v values, got %v: %w", kind, len(dst), len(vals), ErrBadLength)
	}
	for i, d := range dst {
		*d = vals[i]
	}
	return nil
}

func unmarshalJSON(data []byte, kind string, dst ...*float64) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var vals []float64
	err := json.Unmarshal(data, &vals)
	if err != nil {
		return fmt.Errorf("decode %v: %w", kind, err)
	}
	return decodeFlat(kind, vals, dst...)
}

func unmarshalYAML(node *yaml.Node, kind string, dst ...*float64) error {
	var vals []float64
	err := node.Decode(&vals)
	if err != nil {
		return fmt.Errorf("decode %v: %w", kind, err)
	}
	return decodeFlat(kind, vals, dst...)
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([...]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, "point", &p.X, &p.Y)
}

func (p Point) MarshalYAML() (any, error) {
	return []float64{p.X, p.Y}, nil
}

func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, "point", &p.X, &p.Y)
}

func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal([...]float64{v.DX, v.DY})
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, "vector", &v.DX, &v.DY)
}

func (v Vector) MarshalYAML() (any, error) {
	return []float64{v.DX, v.DY}, nil
}

func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, "vector", &v.DX, &v.DY)
}

func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal([...]float64{s.Width, s.Height})
}

func (s *Size) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, "size", &s.Width, &s.Height)
}

func (s Size) MarshalYAML() (any, error) {
	return []float64{s.Width, s.Height}, nil
}

func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, "size", &s.Width, &s.Height)
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([...]float64{r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, "rect", &r.Origin.X, &r.Origin.Y, &r.Size.Width, &r.Size.Height)
}

func (r Rect) MarshalYAML() (any, error) {
	return []float64{r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height}, nil
}

func (r *Rect) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, "rect", &r.Origin.X, &r.Origin.Y, &r.Size.Width, &r.Size.Height)
}

func (t Transform) MarshalJSON() ([]byte, error) {
	return json.Marshal([...]float64{t.M11, t.M12, t.M21, t.M22, t.TX, t.TY})
}

func (t *Transform) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, "transform", &t.M11, &t.M12, &t.M21, &t.M22, &t.TX, &t.TY)
}

func (t Transform) MarshalYAML() (any, error) {
	return []float64{t.M11, t.M12, t.M21, t.M22, t.TX, t.TY}, nil
}

func (t *Transform) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, "transform", &t.M11, &t.M12, &t.M21, &t.M22, &t.TX, &t.TY)
}
