package tensordesc

import "fmt"

// Precision is the element type of a tensor, see precision_e in ie_c_api.h.
type Precision int

const (
	Unspecified Precision = 255
	Mixed       Precision = 0
	FP32        Precision = 10
	FP16        Precision = 11
	FP64        Precision = 13
	Q78         Precision = 20
	I16         Precision = 30
	U4          Precision = 39
	U8          Precision = 40
	Bool        Precision = 41
	I4          Precision = 49
	I8          Precision = 50
	U16         Precision = 60
	I32         Precision = 70
	Bin         Precision = 71
	I64         Precision = 72
	U64         Precision = 73
	U32         Precision = 74
	Custom      Precision = 80
)

type precisionInfo struct {
	name string
	bits int
}

var precisions = map[Precision]precisionInfo{
	Unspecified: {"UNSPECIFIED", 0},
	Mixed:       {"MIXED", 0},
	FP32:        {"FP32", 32},
	FP16:        {"FP16", 16},
	FP64:        {"FP64", 64},
	Q78:         {"Q78", 16},
	I16:         {"I16", 16},
	U4:          {"U4", 4},
	U8:          {"U8", 8},
	Bool:        {"BOOL", 8},
	I4:          {"I4", 4},
	I8:          {"I8", 8},
	U16:         {"U16", 16},
	I32:         {"I32", 32},
	Bin:         {"BIN", 1},
	I64:         {"I64", 64},
	U64:         {"U64", 64},
	U32:         {"U32", 32},
	Custom:      {"CUSTOM", 0},
}

// String implements fmt.Stringer.
func (p Precision) String() string {
	if info, found := precisions[p]; found {
		return info.name
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// Bits returns the number of bits used by one element, or 0 if the precision has no fixed size.
func (p Precision) Bits() int {
	return precisions[p].bits
}
