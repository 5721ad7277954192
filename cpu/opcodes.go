package cpu

import "nes6502/bus"

// An opcodeEntry associates a byte value with the addressing mode and
// operation (and access kind, for cycle accounting) that implement it.
// Multiple opcode bytes may share the same operation, differing only in how
// the operand is addressed.
type opcodeEntry struct {
	name   string
	mode   AddressingMode
	access AccessKind
	op     func(c *Processor, b *bus.Bus)
}

// baseCycles is the published 256-entry base cycle-cost table, indexed
// directly by opcode byte. Dynamic penalties (page-crossing reads, taken
// branches) are added on top of this at Step time.
var baseCycles = [256]byte{
	/* 0x00 */ 7, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 4, 4, 6, 6,
	/* 0x10 */ 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 0x20 */ 6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6,
	/* 0x30 */ 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 0x40 */ 6, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6,
	/* 0x50 */ 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 0x60 */ 6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6,
	/* 0x70 */ 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 0x80 */ 2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	/* 0x90 */ 2, 6, 2, 6, 4, 4, 4, 4, 2, 5, 2, 5, 5, 5, 5, 5,
	/* 0xA0 */ 2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	/* 0xB0 */ 2, 5, 2, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4,
	/* 0xC0 */ 2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	/* 0xD0 */ 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 0xE0 */ 2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	/* 0xF0 */ 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
}

// opcodeTable is indexed directly by opcode byte for O(1), allocation-free
// dispatch. Entries
// left zero-valued (op == nil) are unknown opcodes: the JAM/halt opcodes and
// the handful of undocumented combined opcodes (ANC, ALR, ARR, XAA, ATX,
// AXS, SHA, SHX, SHY, TAS, LAS) that nestest's legal execution path never
// exercises.
var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", Implied, AccessRead, opBRK},
	0x01: {"ORA", IndirectX, AccessRead, opORA},
	0x03: {"SLO", IndirectX, AccessRMW, opSLO},
	0x04: {"NOP", ZeroPage, AccessRead, opNOP},
	0x05: {"ORA", ZeroPage, AccessRead, opORA},
	0x06: {"ASL", ZeroPage, AccessRMW, opASL},
	0x07: {"SLO", ZeroPage, AccessRMW, opSLO},
	0x08: {"PHP", Implied, AccessRead, opPHP},
	0x09: {"ORA", Immediate, AccessRead, opORA},
	0x0A: {"ASL", Accumulator, AccessRead, opASL},
	0x0C: {"NOP", Absolute, AccessRead, opNOP},
	0x0D: {"ORA", Absolute, AccessRead, opORA},
	0x0E: {"ASL", Absolute, AccessRMW, opASL},
	0x0F: {"SLO", Absolute, AccessRMW, opSLO},

	0x10: {"BPL", Relative, AccessRead, opBPL},
	0x11: {"ORA", IndirectY, AccessRead, opORA},
	0x13: {"SLO", IndirectY, AccessRMW, opSLO},
	0x14: {"NOP", ZeroPageX, AccessRead, opNOP},
	0x15: {"ORA", ZeroPageX, AccessRead, opORA},
	0x16: {"ASL", ZeroPageX, AccessRMW, opASL},
	0x17: {"SLO", ZeroPageX, AccessRMW, opSLO},
	0x18: {"CLC", Implied, AccessRead, opCLC},
	0x19: {"ORA", AbsoluteY, AccessRead, opORA},
	0x1A: {"NOP", Implied, AccessRead, opNOP},
	0x1B: {"SLO", AbsoluteY, AccessRMW, opSLO},
	0x1C: {"NOP", AbsoluteX, AccessRead, opNOP},
	0x1D: {"ORA", AbsoluteX, AccessRead, opORA},
	0x1E: {"ASL", AbsoluteX, AccessRMW, opASL},
	0x1F: {"SLO", AbsoluteX, AccessRMW, opSLO},

	0x20: {"JSR", Absolute, AccessRead, opJSR},
	0x21: {"AND", IndirectX, AccessRead, opAND},
	0x23: {"RLA", IndirectX, AccessRMW, opRLA},
	0x24: {"BIT", ZeroPage, AccessRead, opBIT},
	0x25: {"AND", ZeroPage, AccessRead, opAND},
	0x26: {"ROL", ZeroPage, AccessRMW, opROL},
	0x27: {"RLA", ZeroPage, AccessRMW, opRLA},
	0x28: {"PLP", Implied, AccessRead, opPLP},
	0x29: {"AND", Immediate, AccessRead, opAND},
	0x2A: {"ROL", Accumulator, AccessRead, opROL},
	0x2C: {"BIT", Absolute, AccessRead, opBIT},
	0x2D: {"AND", Absolute, AccessRead, opAND},
	0x2E: {"ROL", Absolute, AccessRMW, opROL},
	0x2F: {"RLA", Absolute, AccessRMW, opRLA},

	0x30: {"BMI", Relative, AccessRead, opBMI},
	0x31: {"AND", IndirectY, AccessRead, opAND},
	0x33: {"RLA", IndirectY, AccessRMW, opRLA},
	0x34: {"NOP", ZeroPageX, AccessRead, opNOP},
	0x35: {"AND", ZeroPageX, AccessRead, opAND},
	0x36: {"ROL", ZeroPageX, AccessRMW, opROL},
	0x37: {"RLA", ZeroPageX, AccessRMW, opRLA},
	0x38: {"SEC", Implied, AccessRead, opSEC},
	0x39: {"AND", AbsoluteY, AccessRead, opAND},
	0x3A: {"NOP", Implied, AccessRead, opNOP},
	0x3B: {"RLA", AbsoluteY, AccessRMW, opRLA},
	0x3C: {"NOP", AbsoluteX, AccessRead, opNOP},
	0x3D: {"AND", AbsoluteX, AccessRead, opAND},
	0x3E: {"ROL", AbsoluteX, AccessRMW, opROL},
	0x3F: {"RLA", AbsoluteX, AccessRMW, opRLA},

	0x40: {"RTI", Implied, AccessRead, opRTI},
	0x41: {"EOR", IndirectX, AccessRead, opEOR},
	0x43: {"SRE", IndirectX, AccessRMW, opSRE},
	0x44: {"NOP", ZeroPage, AccessRead, opNOP},
	0x45: {"EOR", ZeroPage, AccessRead, opEOR},
	0x46: {"LSR", ZeroPage, AccessRMW, opLSR},
	0x47: {"SRE", ZeroPage, AccessRMW, opSRE},
	0x48: {"PHA", Implied, AccessRead, opPHA},
	0x49: {"EOR", Immediate, AccessRead, opEOR},
	0x4A: {"LSR", Accumulator, AccessRead, opLSR},
	0x4C: {"JMP", Absolute, AccessRead, opJMP},
	0x4D: {"EOR", Absolute, AccessRead, opEOR},
	0x4E: {"LSR", Absolute, AccessRMW, opLSR},
	0x4F: {"SRE", Absolute, AccessRMW, opSRE},

	0x50: {"BVC", Relative, AccessRead, opBVC},
	0x51: {"EOR", IndirectY, AccessRead, opEOR},
	0x53: {"SRE", IndirectY, AccessRMW, opSRE},
	0x54: {"NOP", ZeroPageX, AccessRead, opNOP},
	0x55: {"EOR", ZeroPageX, AccessRead, opEOR},
	0x56: {"LSR", ZeroPageX, AccessRMW, opLSR},
	0x57: {"SRE", ZeroPageX, AccessRMW, opSRE},
	0x58: {"CLI", Implied, AccessRead, opCLI},
	0x59: {"EOR", AbsoluteY, AccessRead, opEOR},
	0x5A: {"NOP", Implied, AccessRead, opNOP},
	0x5B: {"SRE", AbsoluteY, AccessRMW, opSRE},
	0x5C: {"NOP", AbsoluteX, AccessRead, opNOP},
	0x5D: {"EOR", AbsoluteX, AccessRead, opEOR},
	0x5E: {"LSR", AbsoluteX, AccessRMW, opLSR},
	0x5F: {"SRE", AbsoluteX, AccessRMW, opSRE},

	0x60: {"RTS", Implied, AccessRead, opRTS},
	0x61: {"ADC", IndirectX, AccessRead, opADC},
	0x63: {"RRA", IndirectX, AccessRMW, opRRA},
	0x64: {"NOP", ZeroPage, AccessRead, opNOP},
	0x65: {"ADC", ZeroPage, AccessRead, opADC},
	0x66: {"ROR", ZeroPage, AccessRMW, opROR},
	0x67: {"RRA", ZeroPage, AccessRMW, opRRA},
	0x68: {"PLA", Implied, AccessRead, opPLA},
	0x69: {"ADC", Immediate, AccessRead, opADC},
	0x6A: {"ROR", Accumulator, AccessRead, opROR},
	0x6C: {"JMP", Indirect, AccessRead, opJMP},
	0x6D: {"ADC", Absolute, AccessRead, opADC},
	0x6E: {"ROR", Absolute, AccessRMW, opROR},
	0x6F: {"RRA", Absolute, AccessRMW, opRRA},

	0x70: {"BVS", Relative, AccessRead, opBVS},
	0x71: {"ADC", IndirectY, AccessRead, opADC},
	0x73: {"RRA", IndirectY, AccessRMW, opRRA},
	0x74: {"NOP", ZeroPageX, AccessRead, opNOP},
	0x75: {"ADC", ZeroPageX, AccessRead, opADC},
	0x76: {"ROR", ZeroPageX, AccessRMW, opROR},
	0x77: {"RRA", ZeroPageX, AccessRMW, opRRA},
	0x78: {"SEI", Implied, AccessRead, opSEI},
	0x79: {"ADC", AbsoluteY, AccessRead, opADC},
	0x7A: {"NOP", Implied, AccessRead, opNOP},
	0x7B: {"RRA", AbsoluteY, AccessRMW, opRRA},
	0x7C: {"NOP", AbsoluteX, AccessRead, opNOP},
	0x7D: {"ADC", AbsoluteX, AccessRead, opADC},
	0x7E: {"ROR", AbsoluteX, AccessRMW, opROR},
	0x7F: {"RRA", AbsoluteX, AccessRMW, opRRA},

	0x80: {"NOP", Immediate, AccessRead, opNOP},
	0x81: {"STA", IndirectX, AccessWrite, opSTA},
	0x82: {"NOP", Immediate, AccessRead, opNOP},
	0x83: {"SAX", IndirectX, AccessWrite, opSAX},
	0x84: {"STY", ZeroPage, AccessWrite, opSTY},
	0x85: {"STA", ZeroPage, AccessWrite, opSTA},
	0x86: {"STX", ZeroPage, AccessWrite, opSTX},
	0x87: {"SAX", ZeroPage, AccessWrite, opSAX},
	0x88: {"DEY", Implied, AccessRead, opDEY},
	0x89: {"NOP", Immediate, AccessRead, opNOP},
	0x8A: {"TXA", Implied, AccessRead, opTXA},
	0x8C: {"STY", Absolute, AccessWrite, opSTY},
	0x8D: {"STA", Absolute, AccessWrite, opSTA},
	0x8E: {"STX", Absolute, AccessWrite, opSTX},
	0x8F: {"SAX", Absolute, AccessWrite, opSAX},

	0x90: {"BCC", Relative, AccessRead, opBCC},
	0x91: {"STA", IndirectY, AccessWrite, opSTA},
	0x94: {"STY", ZeroPageX, AccessWrite, opSTY},
	0x95: {"STA", ZeroPageX, AccessWrite, opSTA},
	0x96: {"STX", ZeroPageY, AccessWrite, opSTX},
	0x97: {"SAX", ZeroPageY, AccessWrite, opSAX},
	0x98: {"TYA", Implied, AccessRead, opTYA},
	0x99: {"STA", AbsoluteY, AccessWrite, opSTA},
	0x9A: {"TXS", Implied, AccessRead, opTXS},
	0x9D: {"STA", AbsoluteX, AccessWrite, opSTA},

	0xA0: {"LDY", Immediate, AccessRead, opLDY},
	0xA1: {"LDA", IndirectX, AccessRead, opLDA},
	0xA2: {"LDX", Immediate, AccessRead, opLDX},
	0xA3: {"LAX", IndirectX, AccessRead, opLAX},
	0xA4: {"LDY", ZeroPage, AccessRead, opLDY},
	0xA5: {"LDA", ZeroPage, AccessRead, opLDA},
	0xA6: {"LDX", ZeroPage, AccessRead, opLDX},
	0xA7: {"LAX", ZeroPage, AccessRead, opLAX},
	0xA8: {"TAY", Implied, AccessRead, opTAY},
	0xA9: {"LDA", Immediate, AccessRead, opLDA},
	0xAA: {"TAX", Implied, AccessRead, opTAX},
	0xAC: {"LDY", Absolute, AccessRead, opLDY},
	0xAD: {"LDA", Absolute, AccessRead, opLDA},
	0xAE: {"LDX", Absolute, AccessRead, opLDX},
	0xAF: {"LAX", Absolute, AccessRead, opLAX},

	0xB0: {"BCS", Relative, AccessRead, opBCS},
	0xB1: {"LDA", IndirectY, AccessRead, opLDA},
	0xB3: {"LAX", IndirectY, AccessRead, opLAX},
	0xB4: {"LDY", ZeroPageX, AccessRead, opLDY},
	0xB5: {"LDA", ZeroPageX, AccessRead, opLDA},
	0xB6: {"LDX", ZeroPageY, AccessRead, opLDX},
	0xB7: {"LAX", ZeroPageY, AccessRead, opLAX},
	0xB8: {"CLV", Implied, AccessRead, opCLV},
	0xB9: {"LDA", AbsoluteY, AccessRead, opLDA},
	0xBA: {"TSX", Implied, AccessRead, opTSX},
	0xBC: {"LDY", AbsoluteX, AccessRead, opLDY},
	0xBD: {"LDA", AbsoluteX, AccessRead, opLDA},
	0xBE: {"LDX", AbsoluteY, AccessRead, opLDX},
	0xBF: {"LAX", AbsoluteY, AccessRead, opLAX},

	0xC0: {"CPY", Immediate, AccessRead, opCPY},
	0xC1: {"CMP", IndirectX, AccessRead, opCMP},
	0xC2: {"NOP", Immediate, AccessRead, opNOP},
	0xC3: {"DCP", IndirectX, AccessRMW, opDCP},
	0xC4: {"CPY", ZeroPage, AccessRead, opCPY},
	0xC5: {"CMP", ZeroPage, AccessRead, opCMP},
	0xC6: {"DEC", ZeroPage, AccessRMW, opDEC},
	0xC7: {"DCP", ZeroPage, AccessRMW, opDCP},
	0xC8: {"INY", Implied, AccessRead, opINY},
	0xC9: {"CMP", Immediate, AccessRead, opCMP},
	0xCA: {"DEX", Implied, AccessRead, opDEX},
	0xCC: {"CPY", Absolute, AccessRead, opCPY},
	0xCD: {"CMP", Absolute, AccessRead, opCMP},
	0xCE: {"DEC", Absolute, AccessRMW, opDEC},
	0xCF: {"DCP", Absolute, AccessRMW, opDCP},

	0xD0: {"BNE", Relative, AccessRead, opBNE},
	0xD1: {"CMP", IndirectY, AccessRead, opCMP},
	0xD3: {"DCP", IndirectY, AccessRMW, opDCP},
	0xD4: {"NOP", ZeroPageX, AccessRead, opNOP},
	0xD5: {"CMP", ZeroPageX, AccessRead, opCMP},
	0xD6: {"DEC", ZeroPageX, AccessRMW, opDEC},
	0xD7: {"DCP", ZeroPageX, AccessRMW, opDCP},
	0xD8: {"CLD", Implied, AccessRead, opCLD},
	0xD9: {"CMP", AbsoluteY, AccessRead, opCMP},
	0xDA: {"NOP", Implied, AccessRead, opNOP},
	0xDB: {"DCP", AbsoluteY, AccessRMW, opDCP},
	0xDC: {"NOP", AbsoluteX, AccessRead, opNOP},
	0xDD: {"CMP", AbsoluteX, AccessRead, opCMP},
	0xDE: {"DEC", AbsoluteX, AccessRMW, opDEC},
	0xDF: {"DCP", AbsoluteX, AccessRMW, opDCP},

	0xE0: {"CPX", Immediate, AccessRead, opCPX},
	0xE1: {"SBC", IndirectX, AccessRead, opSBC},
	0xE2: {"NOP", Immediate, AccessRead, opNOP},
	0xE3: {"ISC", IndirectX, AccessRMW, opISC},
	0xE4: {"CPX", ZeroPage, AccessRead, opCPX},
	0xE5: {"SBC", ZeroPage, AccessRead, opSBC},
	0xE6: {"INC", ZeroPage, AccessRMW, opINC},
	0xE7: {"ISC", ZeroPage, AccessRMW, opISC},
	0xE8: {"INX", Implied, AccessRead, opINX},
	0xE9: {"SBC", Immediate, AccessRead, opSBC},
	0xEA: {"NOP", Implied, AccessRead, opNOP},
	0xEB: {"SBC", Immediate, AccessRead, opSBC},
	0xEC: {"CPX", Absolute, AccessRead, opCPX},
	0xED: {"SBC", Absolute, AccessRead, opSBC},
	0xEE: {"INC", Absolute, AccessRMW, opINC},
	0xEF: {"ISC", Absolute, AccessRMW, opISC},

	0xF0: {"BEQ", Relative, AccessRead, opBEQ},
	0xF1: {"SBC", IndirectY, AccessRead, opSBC},
	0xF3: {"ISC", IndirectY, AccessRMW, opISC},
	0xF4: {"NOP", ZeroPageX, AccessRead, opNOP},
	0xF5: {"SBC", ZeroPageX, AccessRead, opSBC},
	0xF6: {"INC", ZeroPageX, AccessRMW, opINC},
	0xF7: {"ISC", ZeroPageX, AccessRMW, opISC},
	0xF8: {"SED", Implied, AccessRead, opSED},
	0xF9: {"SBC", AbsoluteY, AccessRead, opSBC},
	0xFA: {"NOP", Implied, AccessRead, opNOP},
	0xFB: {"ISC", AbsoluteY, AccessRMW, opISC},
	0xFC: {"NOP", AbsoluteX, AccessRead, opNOP},
	0xFD: {"SBC", AbsoluteX, AccessRead, opSBC},
	0xFE: {"INC", AbsoluteX, AccessRMW, opINC},
	0xFF: {"ISC", AbsoluteX, AccessRMW, opISC},
}
