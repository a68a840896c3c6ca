package opcode

// Shape is the static operand layout of an opcode.
type Shape uint8

const (
	ShapeNone            Shape = iota // no operand bytes
	ShapeLocal                        // u1 local variable index (u2 under wide)
	ShapeIncrement                    // iinc: u1 index, s1 const (u2, s2 under wide)
	ShapeByte                         // bipush: s1 immediate
	ShapeShort                        // sipush: s2 immediate
	ShapeConst8                       // ldc: u1 constant pool index
	ShapeConst16                      // u2 constant pool index
	ShapeBranch16                     // s2 branch offset
	ShapeBranch32                     // s4 branch offset
	ShapeArrayType                    // newarray: u1 primitive type code
	ShapeInvokeInterface              // u2 index, u1 count, u1 zero
	ShapeInvokeDynamic                // u2 index, u1 zero, u1 zero
	ShapeMultiANewArray               // u2 index, u1 dimensions
	ShapeTableSwitch                  // padding, s4 default, s4 low, s4 high, offsets
	ShapeLookupSwitch                 // padding, s4 default, u4 npairs, pairs
	ShapeWide                         // prefix, widens the following instruction
)

var shapeNames = [...]string{
	ShapeNone:            "none",
	ShapeLocal:           "local",
	ShapeIncrement:       "increment",
	ShapeByte:            "byte",
	ShapeShort:           "short",
	ShapeConst8:          "const8",
	ShapeConst16:         "const16",
	ShapeBranch16:        "branch16",
	ShapeBranch32:        "branch32",
	ShapeArrayType:       "arraytype",
	ShapeInvokeInterface: "invokeinterface",
	ShapeInvokeDynamic:   "invokedynamic",
	ShapeMultiANewArray:  "multianewarray",
	ShapeTableSwitch:     "tableswitch",
	ShapeLookupSwitch:    "lookupswitch",
	ShapeWide:            "wide",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "invalid"
}

// FixedLength returns the number of operand bytes that follow the opcode
// byte, or -1 when the length depends on the instruction address and its
// contents (the two switch shapes).
func (s Shape) FixedLength() int {
	switch s {
	case ShapeNone, ShapeWide:
		return 0
	case ShapeLocal, ShapeByte, ShapeConst8, ShapeArrayType:
		return 1
	case ShapeIncrement, ShapeShort, ShapeConst16, ShapeBranch16:
		return 2
	case ShapeMultiANewArray:
		return 3
	case ShapeBranch32, ShapeInvokeInterface, ShapeInvokeDynamic:
		return 4
	}
	return -1
}

// WidenedLength returns the operand length when the instruction follows a
// wide prefix. Shapes that cannot be widened return -1.
func (s Shape) WidenedLength() int {
	switch s {
	case ShapeLocal:
		return 2
	case ShapeIncrement:
		return 4
	}
	return -1
}

// WideEligible reports whether a wide prefix may precede this shape.
func (s Shape) WideEligible() bool {
	return s == ShapeLocal || s == ShapeIncrement
}

// Variable reports whether the operand length depends on the address.
func (s Shape) Variable() bool {
	return s == ShapeTableSwitch || s == ShapeLookupSwitch
}

// Branches reports whether the shape carries one or more branch offsets.
func (s Shape) Branches() bool {
	switch s {
	case ShapeBranch16, ShapeBranch32, ShapeTableSwitch, ShapeLookupSwitch:
		return true
	}
	return false
}

// Category groups opcodes the way the instruction set reference does.
type Category uint8

const (
	CategoryConstants Category = iota
	CategoryLoads
	CategoryStores
	CategoryStack
	CategoryMath
	CategoryConversions
	CategoryComparisons
	CategoryControl
	CategoryReferences
	CategoryExtended
	CategoryReserved
)

var categoryNames = [...]string{
	CategoryConstants:   "constants",
	CategoryLoads:       "loads",
	CategoryStores:      "stores",
	CategoryStack:       "stack",
	CategoryMath:        "math",
	CategoryConversions: "conversions",
	CategoryComparisons: "comparisons",
	CategoryControl:     "control",
	CategoryReferences:  "references",
	CategoryExtended:    "extended",
	CategoryReserved:    "reserved",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "invalid"
}
