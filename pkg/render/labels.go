package render

// labelNames maps the byte values that carry a symbolic name: the C0
// control codes, space, DEL, no-break space and soft hyphen. Every other
// byte renders as a literal character or a \xNN escape.
var labelNames = map[byte]string{
	0x00: "<NULL>",
	0x01: "<SOH>",
	0x02: "<STX>",
	0x03: "<ETX>",
	0x04: "<EOT>",
	0x05: "<ENQ>",
	0x06: "<ACK>",
	0x07: "<BEL>",
	0x08: "<BS>",
	0x09: "<TAB>",
	0x0a: `\n`,
	0x0b: "<VT>",
	0x0c: "<FF>",
	0x0d: `\r`,
	0x0e: "<SO>",
	0x0f: "<SI>",
	0x10: "<DLE>",
	0x11: "<DC1>",
	0x12: "<DC2>",
	0x13: "<DC3>",
	0x14: "<DC4>",
	0x15: "<NAK>",
	0x16: "<SYN>",
	0x17: "<ETB>",
	0x18: "<CAN>",
	0x19: "<EM>",
	0x1a: "<SUB>",
	0x1b: "<ESC>",
	0x1c: "<FS>",
	0x1d: "<GS>",
	0x1e: "<RS>",
	0x1f: "<US>",
	0x20: "<space>",
	0x7f: "<DEL>",
	0xa0: "<non break space>",
	0xad: "<soft hyphen>",
}
