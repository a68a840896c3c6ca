package opcode

// Count is the number of defined opcodes.
const Count = 205

// Info holds static metadata for an opcode.
type Info struct {
	Mnemonic string
	Shape    Shape
	Category Category
}

// Constants
const (
	Nop        Opcode = 0x00
	AConstNull Opcode = 0x01
	IConstM1   Opcode = 0x02
	IConst0    Opcode = 0x03
	IConst1    Opcode = 0x04
	IConst2    Opcode = 0x05
	IConst3    Opcode = 0x06
	IConst4    Opcode = 0x07
	IConst5    Opcode = 0x08
	LConst0    Opcode = 0x09
	LConst1    Opcode = 0x0a
	FConst0    Opcode = 0x0b
	FConst1    Opcode = 0x0c
	FConst2    Opcode = 0x0d
	DConst0    Opcode = 0x0e
	DConst1    Opcode = 0x0f
	BIPush     Opcode = 0x10
	SIPush     Opcode = 0x11
	Ldc        Opcode = 0x12
	LdcW       Opcode = 0x13
	Ldc2W      Opcode = 0x14
)

// Loads
const (
	ILoad   Opcode = 0x15
	LLoad   Opcode = 0x16
	FLoad   Opcode = 0x17
	DLoad   Opcode = 0x18
	ALoad   Opcode = 0x19
	ILoad0  Opcode = 0x1a
	ILoad1  Opcode = 0x1b
	ILoad2  Opcode = 0x1c
	ILoad3  Opcode = 0x1d
	LLoad0  Opcode = 0x1e
	LLoad1  Opcode = 0x1f
	LLoad2  Opcode = 0x20
	LLoad3  Opcode = 0x21
	FLoad0  Opcode = 0x22
	FLoad1  Opcode = 0x23
	FLoad2  Opcode = 0x24
	FLoad3  Opcode = 0x25
	DLoad0  Opcode = 0x26
	DLoad1  Opcode = 0x27
	DLoad2  Opcode = 0x28
	DLoad3  Opcode = 0x29
	ALoad0  Opcode = 0x2a
	ALoad1  Opcode = 0x2b
	ALoad2  Opcode = 0x2c
	ALoad3  Opcode = 0x2d
	IALoad  Opcode = 0x2e
	LALoad  Opcode = 0x2f
	FALoad  Opcode = 0x30
	DALoad  Opcode = 0x31
	AALoad  Opcode = 0x32
	BALoad  Opcode = 0x33
	CALoad  Opcode = 0x34
	SALoad  Opcode = 0x35
)

// Stores
const (
	IStore  Opcode = 0x36
	LStore  Opcode = 0x37
	FStore  Opcode = 0x38
	DStore  Opcode = 0x39
	AStore  Opcode = 0x3a
	IStore0 Opcode = 0x3b
	IStore1 Opcode = 0x3c
	IStore2 Opcode = 0x3d
	IStore3 Opcode = 0x3e
	LStore0 Opcode = 0x3f
	LStore1 Opcode = 0x40
	LStore2 Opcode = 0x41
	LStore3 Opcode = 0x42
	FStore0 Opcode = 0x43
	FStore1 Opcode = 0x44
	FStore2 Opcode = 0x45
	FStore3 Opcode = 0x46
	DStore0 Opcode = 0x47
	DStore1 Opcode = 0x48
	DStore2 Opcode = 0x49
	DStore3 Opcode = 0x4a
	AStore0 Opcode = 0x4b
	AStore1 Opcode = 0x4c
	AStore2 Opcode = 0x4d
	AStore3 Opcode = 0x4e
	IAStore Opcode = 0x4f
	LAStore Opcode = 0x50
	FAStore Opcode = 0x51
	DAStore Opcode = 0x52
	AAStore Opcode = 0x53
	BAStore Opcode = 0x54
	CAStore Opcode = 0x55
	SAStore Opcode = 0x56
)

// Stack
const (
	Pop    Opcode = 0x57
	Pop2   Opcode = 0x58
	Dup    Opcode = 0x59
	DupX1  Opcode = 0x5a
	DupX2  Opcode = 0x5b
	Dup2   Opcode = 0x5c
	Dup2X1 Opcode = 0x5d
	Dup2X2 Opcode = 0x5e
	Swap   Opcode = 0x5f
)

// Math
const (
	IAdd  Opcode = 0x60
	LAdd  Opcode = 0x61
	FAdd  Opcode = 0x62
	DAdd  Opcode = 0x63
	ISub  Opcode = 0x64
	LSub  Opcode = 0x65
	FSub  Opcode = 0x66
	DSub  Opcode = 0x67
	IMul  Opcode = 0x68
	LMul  Opcode = 0x69
	FMul  Opcode = 0x6a
	DMul  Opcode = 0x6b
	IDiv  Opcode = 0x6c
	LDiv  Opcode = 0x6d
	FDiv  Opcode = 0x6e
	DDiv  Opcode = 0x6f
	IRem  Opcode = 0x70
	LRem  Opcode = 0x71
	FRem  Opcode = 0x72
	DRem  Opcode = 0x73
	INeg  Opcode = 0x74
	LNeg  Opcode = 0x75
	FNeg  Opcode = 0x76
	DNeg  Opcode = 0x77
	IShl  Opcode = 0x78
	LShl  Opcode = 0x79
	IShr  Opcode = 0x7a
	LShr  Opcode = 0x7b
	IUShr Opcode = 0x7c
	LUShr Opcode = 0x7d
	IAnd  Opcode = 0x7e
	LAnd  Opcode = 0x7f
	IOr   Opcode = 0x80
	LOr   Opcode = 0x81
	IXor  Opcode = 0x82
	LXor  Opcode = 0x83
	IInc  Opcode = 0x84
)

// Conversions
const (
	I2L Opcode = 0x85
	I2F Opcode = 0x86
	I2D Opcode = 0x87
	L2I Opcode = 0x88
	L2F Opcode = 0x89
	L2D Opcode = 0x8a
	F2I Opcode = 0x8b
	F2L Opcode = 0x8c
	F2D Opcode = 0x8d
	D2I Opcode = 0x8e
	D2L Opcode = 0x8f
	D2F Opcode = 0x90
	I2B Opcode = 0x91
	I2C Opcode = 0x92
	I2S Opcode = 0x93
)

// Comparisons
const (
	LCmp     Opcode = 0x94
	FCmpL    Opcode = 0x95
	FCmpG    Opcode = 0x96
	DCmpL    Opcode = 0x97
	DCmpG    Opcode = 0x98
	IfEq     Opcode = 0x99
	IfNe     Opcode = 0x9a
	IfLt     Opcode = 0x9b
	IfGe     Opcode = 0x9c
	IfGt     Opcode = 0x9d
	IfLe     Opcode = 0x9e
	IfICmpEq Opcode = 0x9f
	IfICmpNe Opcode = 0xa0
	IfICmpLt Opcode = 0xa1
	IfICmpGe Opcode = 0xa2
	IfICmpGt Opcode = 0xa3
	IfICmpLe Opcode = 0xa4
	IfACmpEq Opcode = 0xa5
	IfACmpNe Opcode = 0xa6
)

// Control
const (
	Goto         Opcode = 0xa7
	Jsr          Opcode = 0xa8
	Ret          Opcode = 0xa9
	TableSwitch  Opcode = 0xaa
	LookupSwitch Opcode = 0xab
	IReturn      Opcode = 0xac
	LReturn      Opcode = 0xad
	FReturn      Opcode = 0xae
	DReturn      Opcode = 0xaf
	AReturn      Opcode = 0xb0
	Return       Opcode = 0xb1
)

// References
const (
	GetStatic       Opcode = 0xb2
	PutStatic       Opcode = 0xb3
	GetField        Opcode = 0xb4
	PutField        Opcode = 0xb5
	InvokeVirtual   Opcode = 0xb6
	InvokeSpecial   Opcode = 0xb7
	InvokeStatic    Opcode = 0xb8
	InvokeInterface Opcode = 0xb9
	InvokeDynamic   Opcode = 0xba
	New             Opcode = 0xbb
	NewArray        Opcode = 0xbc
	ANewArray       Opcode = 0xbd
	ArrayLength     Opcode = 0xbe
	AThrow          Opcode = 0xbf
	CheckCast       Opcode = 0xc0
	InstanceOf      Opcode = 0xc1
	MonitorEnter    Opcode = 0xc2
	MonitorExit     Opcode = 0xc3
)

// Extended
const (
	Wide           Opcode = 0xc4
	MultiANewArray Opcode = 0xc5
	IfNull         Opcode = 0xc6
	IfNonNull      Opcode = 0xc7
	GotoW          Opcode = 0xc8
	JsrW           Opcode = 0xc9
)

// Reserved
const (
	Breakpoint Opcode = 0xca
	ImpDep1    Opcode = 0xfe
	ImpDep2    Opcode = 0xff
)

var catalog = [256]Info{
	Nop:        {"nop", ShapeNone, CategoryConstants},
	AConstNull: {"aconst_null", ShapeNone, CategoryConstants},
	IConstM1:   {"iconst_m1", ShapeNone, CategoryConstants},
	IConst0:    {"iconst_0", ShapeNone, CategoryConstants},
	IConst1:    {"iconst_1", ShapeNone, CategoryConstants},
	IConst2:    {"iconst_2", ShapeNone, CategoryConstants},
	IConst3:    {"iconst_3", ShapeNone, CategoryConstants},
	IConst4:    {"iconst_4", ShapeNone, CategoryConstants},
	IConst5:    {"iconst_5", ShapeNone, CategoryConstants},
	LConst0:    {"lconst_0", ShapeNone, CategoryConstants},
	LConst1:    {"lconst_1", ShapeNone, CategoryConstants},
	FConst0:    {"fconst_0", ShapeNone, CategoryConstants},
	FConst1:    {"fconst_1", ShapeNone, CategoryConstants},
	FConst2:    {"fconst_2", ShapeNone, CategoryConstants},
	DConst0:    {"dconst_0", ShapeNone, CategoryConstants},
	DConst1:    {"dconst_1", ShapeNone, CategoryConstants},
	BIPush:     {"bipush", ShapeByte, CategoryConstants},
	SIPush:     {"sipush", ShapeShort, CategoryConstants},
	Ldc:        {"ldc", ShapeConst8, CategoryConstants},
	LdcW:       {"ldc_w", ShapeConst16, CategoryConstants},
	Ldc2W:      {"ldc2_w", ShapeConst16, CategoryConstants},

	ILoad:  {"iload", ShapeLocal, CategoryLoads},
	LLoad:  {"lload", ShapeLocal, CategoryLoads},
	FLoad:  {"fload", ShapeLocal, CategoryLoads},
	DLoad:  {"dload", ShapeLocal, CategoryLoads},
	ALoad:  {"aload", ShapeLocal, CategoryLoads},
	ILoad0: {"iload_0", ShapeNone, CategoryLoads},
	ILoad1: {"iload_1", ShapeNone, CategoryLoads},
	ILoad2: {"iload_2", ShapeNone, CategoryLoads},
	ILoad3: {"iload_3", ShapeNone, CategoryLoads},
	LLoad0: {"lload_0", ShapeNone, CategoryLoads},
	LLoad1: {"lload_1", ShapeNone, CategoryLoads},
	LLoad2: {"lload_2", ShapeNone, CategoryLoads},
	LLoad3: {"lload_3", ShapeNone, CategoryLoads},
	FLoad0: {"fload_0", ShapeNone, CategoryLoads},
	FLoad1: {"fload_1", ShapeNone, CategoryLoads},
	FLoad2: {"fload_2", ShapeNone, CategoryLoads},
	FLoad3: {"fload_3", ShapeNone, CategoryLoads},
	DLoad0: {"dload_0", ShapeNone, CategoryLoads},
	DLoad1: {"dload_1", ShapeNone, CategoryLoads},
	DLoad2: {"dload_2", ShapeNone, CategoryLoads},
	DLoad3: {"dload_3", ShapeNone, CategoryLoads},
	ALoad0: {"aload_0", ShapeNone, CategoryLoads},
	ALoad1: {"aload_1", ShapeNone, CategoryLoads},
	ALoad2: {"aload_2", ShapeNone, CategoryLoads},
	ALoad3: {"aload_3", ShapeNone, CategoryLoads},
	IALoad: {"iaload", ShapeNone, CategoryLoads},
	LALoad: {"laload", ShapeNone, CategoryLoads},
	FALoad: {"faload", ShapeNone, CategoryLoads},
	DALoad: {"daload", ShapeNone, CategoryLoads},
	AALoad: {"aaload", ShapeNone, CategoryLoads},
	BALoad: {"baload", ShapeNone, CategoryLoads},
	CALoad: {"caload", ShapeNone, CategoryLoads},
	SALoad: {"saload", ShapeNone, CategoryLoads},

	IStore:  {"istore", ShapeLocal, CategoryStores},
	LStore:  {"lstore", ShapeLocal, CategoryStores},
	FStore:  {"fstore", ShapeLocal, CategoryStores},
	DStore:  {"dstore", ShapeLocal, CategoryStores},
	AStore:  {"astore", ShapeLocal, CategoryStores},
	IStore0: {"istore_0", ShapeNone, CategoryStores},
	IStore1: {"istore_1", ShapeNone, CategoryStores},
	IStore2: {"istore_2", ShapeNone, CategoryStores},
	IStore3: {"istore_3", ShapeNone, CategoryStores},
	LStore0: {"lstore_0", ShapeNone, CategoryStores},
	LStore1: {"lstore_1", ShapeNone, CategoryStores},
	LStore2: {"lstore_2", ShapeNone, CategoryStores},
	LStore3: {"lstore_3", ShapeNone, CategoryStores},
	FStore0: {"fstore_0", ShapeNone, CategoryStores},
	FStore1: {"fstore_1", ShapeNone, CategoryStores},
	FStore2: {"fstore_2", ShapeNone, CategoryStores},
	FStore3: {"fstore_3", ShapeNone, CategoryStores},
	DStore0: {"dstore_0", ShapeNone, CategoryStores},
	DStore1: {"dstore_1", ShapeNone, CategoryStores},
	DStore2: {"dstore_2", ShapeNone, CategoryStores},
	DStore3: {"dstore_3", ShapeNone, CategoryStores},
	AStore0: {"astore_0", ShapeNone, CategoryStores},
	AStore1: {"astore_1", ShapeNone, CategoryStores},
	AStore2: {"astore_2", ShapeNone, CategoryStores},
	AStore3: {"astore_3", ShapeNone, CategoryStores},
	IAStore: {"iastore", ShapeNone, CategoryStores},
	LAStore: {"lastore", ShapeNone, CategoryStores},
	FAStore: {"fastore", ShapeNone, CategoryStores},
	DAStore: {"dastore", ShapeNone, CategoryStores},
	AAStore: {"aastore", ShapeNone, CategoryStores},
	BAStore: {"bastore", ShapeNone, CategoryStores},
	CAStore: {"castore", ShapeNone, CategoryStores},
	SAStore: {"sastore", ShapeNone, CategoryStores},

	Pop:    {"pop", ShapeNone, CategoryStack},
	Pop2:   {"pop2", ShapeNone, CategoryStack},
	Dup:    {"dup", ShapeNone, CategoryStack},
	DupX1:  {"dup_x1", ShapeNone, CategoryStack},
	DupX2:  {"dup_x2", ShapeNone, CategoryStack},
	Dup2:   {"dup2", ShapeNone, CategoryStack},
	Dup2X1: {"dup2_x1", ShapeNone, CategoryStack},
	Dup2X2: {"dup2_x2", ShapeNone, CategoryStack},
	Swap:   {"swap", ShapeNone, CategoryStack},

	IAdd:  {"iadd", ShapeNone, CategoryMath},
	LAdd:  {"ladd", ShapeNone, CategoryMath},
	FAdd:  {"fadd", ShapeNone, CategoryMath},
	DAdd:  {"dadd", ShapeNone, CategoryMath},
	ISub:  {"isub", ShapeNone, CategoryMath},
	LSub:  {"lsub", ShapeNone, CategoryMath},
	FSub:  {"fsub", ShapeNone, CategoryMath},
	DSub:  {"dsub", ShapeNone, CategoryMath},
	IMul:  {"imul", ShapeNone, CategoryMath},
	LMul:  {"lmul", ShapeNone, CategoryMath},
	FMul:  {"fmul", ShapeNone, CategoryMath},
	DMul:  {"dmul", ShapeNone, CategoryMath},
	IDiv:  {"idiv", ShapeNone, CategoryMath},
	LDiv:  {"ldiv", ShapeNone, CategoryMath},
	FDiv:  {"fdiv", ShapeNone, CategoryMath},
	DDiv:  {"ddiv", ShapeNone, CategoryMath},
	IRem:  {"irem", ShapeNone, CategoryMath},
	LRem:  {"lrem", ShapeNone, CategoryMath},
	FRem:  {"frem", ShapeNone, CategoryMath},
	DRem:  {"drem", ShapeNone, CategoryMath},
	INeg:  {"ineg", ShapeNone, CategoryMath},
	LNeg:  {"lneg", ShapeNone, CategoryMath},
	FNeg:  {"fneg", ShapeNone, CategoryMath},
	DNeg:  {"dneg", ShapeNone, CategoryMath},
	IShl:  {"ishl", ShapeNone, CategoryMath},
	LShl:  {"lshl", ShapeNone, CategoryMath},
	IShr:  {"ishr", ShapeNone, CategoryMath},
	LShr:  {"lshr", ShapeNone, CategoryMath},
	IUShr: {"iushr", ShapeNone, CategoryMath},
	LUShr: {"lushr", ShapeNone, CategoryMath},
	IAnd:  {"iand", ShapeNone, CategoryMath},
	LAnd:  {"land", ShapeNone, CategoryMath},
	IOr:   {"ior", ShapeNone, CategoryMath},
	LOr:   {"lor", ShapeNone, CategoryMath},
	IXor:  {"ixor", ShapeNone, CategoryMath},
	LXor:  {"lxor", ShapeNone, CategoryMath},
	IInc:  {"iinc", ShapeIncrement, CategoryMath},

	I2L: {"i2l", ShapeNone, CategoryConversions},
	I2F: {"i2f", ShapeNone, CategoryConversions},
	I2D: {"i2d", ShapeNone, CategoryConversions},
	L2I: {"l2i", ShapeNone, CategoryConversions},
	L2F: {"l2f", ShapeNone, CategoryConversions},
	L2D: {"l2d", ShapeNone, CategoryConversions},
	F2I: {"f2i", ShapeNone, CategoryConversions},
	F2L: {"f2l", ShapeNone, CategoryConversions},
	F2D: {"f2d", ShapeNone, CategoryConversions},
	D2I: {"d2i", ShapeNone, CategoryConversions},
	D2L: {"d2l", ShapeNone, CategoryConversions},
	D2F: {"d2f", ShapeNone, CategoryConversions},
	I2B: {"i2b", ShapeNone, CategoryConversions},
	I2C: {"i2c", ShapeNone, CategoryConversions},
	I2S: {"i2s", ShapeNone, CategoryConversions},

	LCmp:     {"lcmp", ShapeNone, CategoryComparisons},
	FCmpL:    {"fcmpl", ShapeNone, CategoryComparisons},
	FCmpG:    {"fcmpg", ShapeNone, CategoryComparisons},
	DCmpL:    {"dcmpl", ShapeNone, CategoryComparisons},
	DCmpG:    {"dcmpg", ShapeNone, CategoryComparisons},
	IfEq:     {"ifeq", ShapeBranch16, CategoryComparisons},
	IfNe:     {"ifne", ShapeBranch16, CategoryComparisons},
	IfLt:     {"iflt", ShapeBranch16, CategoryComparisons},
	IfGe:     {"ifge", ShapeBranch16, CategoryComparisons},
	IfGt:     {"ifgt", ShapeBranch16, CategoryComparisons},
	IfLe:     {"ifle", ShapeBranch16, CategoryComparisons},
	IfICmpEq: {"if_icmpeq", ShapeBranch16, CategoryComparisons},
	IfICmpNe: {"if_icmpne", ShapeBranch16, CategoryComparisons},
	IfICmpLt: {"if_icmplt", ShapeBranch16, CategoryComparisons},
	IfICmpGe: {"if_icmpge", ShapeBranch16, CategoryComparisons},
	IfICmpGt: {"if_icmpgt", ShapeBranch16, CategoryComparisons},
	IfICmpLe: {"if_icmple", ShapeBranch16, CategoryComparisons},
	IfACmpEq: {"if_acmpeq", ShapeBranch16, CategoryComparisons},
	IfACmpNe: {"if_acmpne", ShapeBranch16, CategoryComparisons},

	Goto:         {"goto", ShapeBranch16, CategoryControl},
	Jsr:          {"jsr", ShapeBranch16, CategoryControl},
	Ret:          {"ret", ShapeLocal, CategoryControl},
	TableSwitch:  {"tableswitch", ShapeTableSwitch, CategoryControl},
	LookupSwitch: {"lookupswitch", ShapeLookupSwitch, CategoryControl},
	IReturn:      {"ireturn", ShapeNone, CategoryControl},
	LReturn:      {"lreturn", ShapeNone, CategoryControl},
	FReturn:      {"freturn", ShapeNone, CategoryControl},
	DReturn:      {"dreturn", ShapeNone, CategoryControl},
	AReturn:      {"areturn", ShapeNone, CategoryControl},
	Return:       {"return", ShapeNone, CategoryControl},

	GetStatic:       {"getstatic", ShapeConst16, CategoryReferences},
	PutStatic:       {"putstatic", ShapeConst16, CategoryReferences},
	GetField:        {"getfield", ShapeConst16, CategoryReferences},
	PutField:        {"putfield", ShapeConst16, CategoryReferences},
	InvokeVirtual:   {"invokevirtual", ShapeConst16, CategoryReferences},
	InvokeSpecial:   {"invokespecial", ShapeConst16, CategoryReferences},
	InvokeStatic:    {"invokestatic", ShapeConst16, CategoryReferences},
	InvokeInterface: {"invokeinterface", ShapeInvokeInterface, CategoryReferences},
	InvokeDynamic:   {"invokedynamic", ShapeInvokeDynamic, CategoryReferences},
	New:             {"new", ShapeConst16, CategoryReferences},
	NewArray:        {"newarray", ShapeArrayType, CategoryReferences},
	ANewArray:       {"anewarray", ShapeConst16, CategoryReferences},
	ArrayLength:     {"arraylength", ShapeNone, CategoryReferences},
	AThrow:          {"athrow", ShapeNone, CategoryReferences},
	CheckCast:       {"checkcast", ShapeConst16, CategoryReferences},
	InstanceOf:      {"instanceof", ShapeConst16, CategoryReferences},
	MonitorEnter:    {"monitorenter", ShapeNone, CategoryReferences},
	MonitorExit:     {"monitorexit", ShapeNone, CategoryReferences},

	Wide:           {"wide", ShapeWide, CategoryExtended},
	MultiANewArray: {"multianewarray", ShapeMultiANewArray, CategoryExtended},
	IfNull:         {"ifnull", ShapeBranch16, CategoryExtended},
	IfNonNull:      {"ifnonnull", ShapeBranch16, CategoryExtended},
	GotoW:          {"goto_w", ShapeBranch32, CategoryExtended},
	JsrW:           {"jsr_w", ShapeBranch32, CategoryExtended},

	Breakpoint: {"breakpoint", ShapeNone, CategoryReserved},
	ImpDep1:    {"impdep1", ShapeNone, CategoryReserved},
	ImpDep2:    {"impdep2", ShapeNone, CategoryReserved},
}

var byMnemonic = func() map[string]Opcode {
	m := make(map[string]Opcode, Count)
	for b, info := range catalog {
		if info.Mnemonic != "" {
			m[info.Mnemonic] = Opcode(b)
		}
	}
	return m
}()
