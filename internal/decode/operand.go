package decode

import "fmt"

// Operand is the decoded payload of an instruction. There is one concrete
// type per operand shape; NoOperand stands for shapes without operand bytes.
type Operand interface {
	Kind() string
	isOperand()
}

// NoOperand is the payload of zero-operand instructions and of wide itself.
type NoOperand struct{}

// LocalIndex is a local variable slot (iload, astore, ret, ...).
type LocalIndex struct {
	Index uint16 `json:"index"`
}

// Increment is the iinc payload.
type Increment struct {
	Index uint16 `json:"index"`
	Const int16  `json:"const"`
}

// Immediate is the literal pushed by bipush or sipush.
type Immediate struct {
	Value int16 `json:"value"`
}

// ConstIndex is a constant pool index, 8-bit for ldc and 16-bit otherwise.
type ConstIndex struct {
	Index uint16 `json:"index"`
}

// Branch is a signed offset relative to the branching instruction.
type Branch struct {
	Offset int32 `json:"offset"`
}

// ArrayType is the primitive element type code of newarray.
type ArrayType struct {
	Type uint8 `json:"type"`
}

// InvokeInterface carries the method reference, the argument slot count and
// the trailing byte the format requires to be zero.
type InvokeInterface struct {
	Index    uint16 `json:"index"`
	Count    uint8  `json:"count"`
	Reserved uint8  `json:"reserved,omitempty"`
}

// InvokeDynamic carries the call site index and two bytes required to be zero.
type InvokeDynamic struct {
	Index    uint16 `json:"index"`
	Reserved uint16 `json:"reserved,omitempty"`
}

// MultiANewArray carries the array class index and the dimension count.
type MultiANewArray struct {
	Index      uint16 `json:"index"`
	Dimensions uint8  `json:"dimensions"`
}

// TableSwitch is a dense jump table covering Low..High.
type TableSwitch struct {
	Default int32   `json:"default"`
	Low     int32   `json:"low"`
	High    int32   `json:"high"`
	Offsets []int32 `json:"offsets"`
}

// MatchOffset is one lookupswitch entry.
type MatchOffset struct {
	Match  int32 `json:"match"`
	Offset int32 `json:"offset"`
}

// LookupSwitch is a sparse jump table. Pairs keep their encoded order.
type LookupSwitch struct {
	Default int32         `json:"default"`
	Pairs   []MatchOffset `json:"pairs"`
}

func (NoOperand) Kind() string       { return "none" }
func (LocalIndex) Kind() string      { return "local" }
func (Increment) Kind() string       { return "increment" }
func (Immediate) Kind() string       { return "immediate" }
func (ConstIndex) Kind() string      { return "const" }
func (Branch) Kind() string          { return "branch" }
func (ArrayType) Kind() string       { return "arraytype" }
func (InvokeInterface) Kind() string { return "invokeinterface" }
func (InvokeDynamic) Kind() string   { return "invokedynamic" }
func (MultiANewArray) Kind() string  { return "multianewarray" }
func (TableSwitch) Kind() string     { return "tableswitch" }
func (LookupSwitch) Kind() string    { return "lookupswitch" }

func (NoOperand) isOperand()       {}
func (LocalIndex) isOperand()      {}
func (Increment) isOperand()       {}
func (Immediate) isOperand()       {}
func (ConstIndex) isOperand()      {}
func (Branch) isOperand()          {}
func (ArrayType) isOperand()       {}
func (InvokeInterface) isOperand() {}
func (InvokeDynamic) isOperand()   {}
func (MultiANewArray) isOperand()  {}
func (TableSwitch) isOperand()     {}
func (LookupSwitch) isOperand()    {}

// Target returns the absolute address the branch lands on. The result may
// fall outside the method; checking that is up to the caller.
func (b Branch) Target(address uint32) int64 {
	return int64(address) + int64(b.Offset)
}

// Targets returns the case targets in table order.
func (s TableSwitch) Targets(address uint32) []int64 {
	out := make([]int64, len(s.Offsets))
	for i, off := range s.Offsets {
		out[i] = int64(address) + int64(off)
	}
	return out
}

// DefaultTarget returns the address taken when the key is outside Low..High.
func (s TableSwitch) DefaultTarget(address uint32) int64 {
	return int64(address) + int64(s.Default)
}

// Targets returns the pair targets in encoded order.
func (s LookupSwitch) Targets(address uint32) []int64 {
	out := make([]int64, len(s.Pairs))
	for i, p := range s.Pairs {
		out[i] = int64(address) + int64(p.Offset)
	}
	return out
}

// DefaultTarget returns the address taken when no match value equals the key.
func (s LookupSwitch) DefaultTarget(address uint32) int64 {
	return int64(address) + int64(s.Default)
}

var arrayTypeNames = map[uint8]string{
	4:  "boolean",
	5:  "char",
	6:  "float",
	7:  "double",
	8:  "byte",
	9:  "short",
	10: "int",
	11: "long",
}

// Name returns the element type keyword, e.g. "int".
func (a ArrayType) Name() string {
	if n, ok := arrayTypeNames[a.Type]; ok {
		return n
	}
	return fmt.Sprintf("type%d", a.Type)
}
