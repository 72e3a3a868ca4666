package tensordesc

import "fmt"

// Layout of a tensor in memory, see layout_e in ie_c_api.h.
type Layout int

const (
	LayoutAny   Layout = 0
	LayoutNCHW  Layout = 1
	LayoutNHWC  Layout = 2
	LayoutNCDHW Layout = 3
	LayoutNDHWC Layout = 4

	LayoutOIHW Layout = 64

	LayoutScalar Layout = 95
	LayoutC      Layout = 96

	LayoutCHW Layout = 128

	LayoutHW Layout = 192
	LayoutNC Layout = 193
	LayoutCN Layout = 194

	LayoutBlocked Layout = 200
)

var layoutNames = map[Layout]string{
	LayoutAny:     "ANY",
	LayoutNCHW:    "NCHW",
	LayoutNHWC:    "NHWC",
	LayoutNCDHW:   "NCDHW",
	LayoutNDHWC:   "NDHWC",
	LayoutOIHW:    "OIHW",
	LayoutScalar:  "SCALAR",
	LayoutC:       "C",
	LayoutCHW:     "CHW",
	LayoutHW:      "HW",
	LayoutNC:      "NC",
	LayoutCN:      "CN",
	LayoutBlocked: "BLOCKED",
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	if name, found := layoutNames[l]; found {
		return name
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}
