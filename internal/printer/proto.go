package printer

import (
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/funvibe/funvec/internal/vector"
)

// ToStruct converts v into a protobuf Value for export.
//
// A vector becomes a struct with its kind, its values and, when present,
// its names and dim. NA is null. Non-finite doubles are spelled as the
// strings "NaN", "Inf" and "-Inf" since JSON has no numbers for them;
// complex elements are formatted strings. A frame becomes a struct with
// its column names, row count and columns.
func ToStruct(v vector.Value) (*structpb.Value, error) {
	switch x := v.(type) {
	case nil:
		return structpb.NewNullValue(), nil
	case *vector.Frame:
		return frameStruct(x)
	case *vector.Vector:
		if x.Kind() == vector.KindList && vector.HasClass(x, "data.frame") {
			return frameStruct(&vector.Frame{Vector: x})
		}
		return vectorStruct(x)
	}
	if vector.IsNull(v) {
		return structpb.NewNullValue(), nil
	}
	return structpb.NewStringValue(v.Inspect()), nil
}

// MarshalJSON renders v as indented JSON through protojson.
func MarshalJSON(v vector.Value) ([]byte, error) {
	sv, err := ToStruct(v)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(sv)
}

func vectorStruct(v *vector.Vector) (*structpb.Value, error) {
	values := make([]*structpb.Value, v.Len())
	for i := range values {
		e, err := element(v, i)
		if err != nil {
			return nil, err
		}
		values[i] = e
	}
	fields := map[string]*structpb.Value{
		"kind":   structpb.NewStringValue(v.Kind().String()),
		"values": structpb.NewListValue(&structpb.ListValue{Values: values}),
	}
	if names := v.Names(); names != nil {
		nv, err := vectorValues(names)
		if err != nil {
			return nil, err
		}
		fields["names"] = nv
	}
	if dims := v.Dims(); dims != nil {
		dv := make([]*structpb.Value, len(dims))
		for i, d := range dims {
			dv[i] = structpb.NewNumberValue(float64(d))
		}
		fields["dim"] = structpb.NewListValue(&structpb.ListValue{Values: dv})
	}
	if levels := factorLevels(v); vector.IsFactor(v) && levels != nil {
		lv := make([]*structpb.Value, len(levels))
		for i, l := range levels {
			lv[i] = structpb.NewStringValue(l)
		}
		fields["levels"] = structpb.NewListValue(&structpb.ListValue{Values: lv})
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
}

func vectorValues(v *vector.Vector) (*structpb.Value, error) {
	values := make([]*structpb.Value, v.Len())
	for i := range values {
		e, err := element(v, i)
		if err != nil {
			return nil, err
		}
		values[i] = e
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values}), nil
}

func element(v *vector.Vector, i int) (*structpb.Value, error) {
	if v.IsNAAt(i) {
		return structpb.NewNullValue(), nil
	}
	switch v.Kind() {
	case vector.KindLogical:
		return structpb.NewBoolValue(v.Ints()[i] != vector.False), nil
	case vector.KindInteger:
		return structpb.NewNumberValue(float64(v.Ints()[i])), nil
	case vector.KindDouble:
		d := v.Doubles()[i]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return structpb.NewStringValue(vector.FormatDouble(d)), nil
		}
		return structpb.NewNumberValue(d), nil
	case vector.KindComplex:
		return structpb.NewStringValue(vector.FormatComplex(v.Complexes()[i])), nil
	case vector.KindCharacter:
		return structpb.NewStringValue(v.Strings()[i]), nil
	case vector.KindRaw:
		return structpb.NewNumberValue(float64(v.Raws()[i])), nil
	case vector.KindList:
		return ToStruct(v.Elements()[i])
	}
	return structpb.NewNullValue(), nil
}

func frameStruct(f *vector.Frame) (*structpb.Value, error) {
	dims := f.Dims()
	names := make([]*structpb.Value, dims[1])
	columns := make([]*structpb.Value, dims[1])
	var colNames []string
	if n := f.Vector.Names(); n != nil {
		colNames = n.Strings()
	}
	for j := range columns {
		name := ""
		if j < len(colNames) {
			name = colNames[j]
		}
		names[j] = structpb.NewStringValue(name)
		col, err := ToStruct(f.Column(j))
		if err != nil {
			return nil, err
		}
		columns[j] = col
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"kind":    structpb.NewStringValue("data.frame"),
		"rows":    structpb.NewNumberValue(float64(dims[0])),
		"names":   structpb.NewListValue(&structpb.ListValue{Values: names}),
		"columns": structpb.NewListValue(&structpb.ListValue{Values: columns}),
	}}), nil
}
