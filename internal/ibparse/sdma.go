package ibparse

import (
	"fmt"

	"pm4dbg/internal/amd"
	icommon "pm4dbg/internal/common"
	"pm4dbg/internal/pm4"
)

// sdmaLayout names the payload dwords of a fixed size SDMA packet.
type sdmaLayout struct {
	name   string
	fields []string
}

var sdmaLayouts = map[pm4.SDMAOpcode]sdmaLayout{
	pm4.SDMAOpFence:          {"FENCE", []string{"DST_ADDR_LO", "DST_ADDR_HI", "DATA"}},
	pm4.SDMAOpTrap:           {"TRAP", []string{"INT_CONTEXT"}},
	pm4.SDMAOpSemaphore:      {"SEMAPHORE", []string{"ADDR_LO", "ADDR_HI"}},
	pm4.SDMAOpPollRegMem:     {"POLL_REGMEM", []string{"ADDR_LO", "ADDR_HI", "REFERENCE", "MASK", "RETRY_INTERVAL"}},
	pm4.SDMAOpCondExec:       {"COND_EXE", []string{"ADDR_LO", "ADDR_HI", "REFERENCE", "EXEC_COUNT"}},
	pm4.SDMAOpAtomic:         {"ATOMIC", []string{"ADDR_LO", "ADDR_HI", "SRC_DATA_LO", "SRC_DATA_HI", "CMP_DATA_LO", "CMP_DATA_HI", "LOOP_INTERVAL"}},
	pm4.SDMAOpConstantFill:   {"CONSTANT_FILL", []string{"DST_ADDR_LO", "DST_ADDR_HI", "DATA", "BYTE_COUNT"}},
	pm4.SDMAOpTimestamp:      {"TIMESTAMP", []string{"ADDR_LO", "ADDR_HI"}},
	pm4.SDMAOpSRBMWrite:      {"SRBM_WRITE", []string{"ADDR", "DATA"}},
	pm4.SDMAOpGCR:            {"GCR", []string{"BASE_VA_LO", "GCR_CONTROL_AND_BASE_VA_HI", "GCR_CONTROL", "LIMIT_VA"}},
	pm4.SDMAOpIndirectBuffer: {"INDIRECT_BUFFER", []string{"BASE_LO", "BASE_HI", "SIZE", "CSA_ADDR_LO", "CSA_ADDR_HI"}},
}

var sdmaCopyLayouts = map[uint32]sdmaLayout{
	pm4.SDMACopyLinear: {"COPY LINEAR", []string{"COUNT", "PARAMETER", "SRC_ADDR_LO", "SRC_ADDR_HI", "DST_ADDR_LO", "DST_ADDR_HI"}},
	pm4.SDMACopyLinearSubWindow: {"COPY LINEAR_SUB_WINDOW", []string{
		"SRC_ADDR_LO", "SRC_ADDR_HI", "SRC_X_Y", "SRC_Z_PITCH", "SRC_SLICE_PITCH",
		"DST_ADDR_LO", "DST_ADDR_HI", "DST_X_Y", "DST_Z_PITCH", "DST_SLICE_PITCH",
		"RECT_X_Y", "RECT_Z"}},
	pm4.SDMACopyTiledSubWindow: {"COPY TILED_SUB_WINDOW", []string{
		"TILED_ADDR_LO", "TILED_ADDR_HI", "TILED_X_Y", "TILED_Z", "WIDTH_HEIGHT", "DEPTH_INFO", "MIP_MAX",
		"LINEAR_ADDR_LO", "LINEAR_ADDR_HI", "LINEAR_X_Y", "LINEAR_Z_PITCH", "LINEAR_SLICE_PITCH",
		"RECT_X_Y"}},
	pm4.SDMACopyT2TSubWindow: {"COPY T2T_SUB_WINDOW", []string{
		"SRC_ADDR_LO", "SRC_ADDR_HI", "SRC_X_Y", "SRC_Z_WIDTH", "SRC_HEIGHT_DEPTH", "SRC_INFO",
		"DST_ADDR_LO", "DST_ADDR_HI", "DST_X_Y", "DST_Z_WIDTH", "DST_HEIGHT_DEPTH", "DST_INFO",
		"RECT_X_Y", "RECT_Z"}},
}

// parseSDMA walks an SDMA IB. SDMA packets have no generic length field,
// so an unknown opcode ends the IB.
func (p *Parser) parseSDMA(b *ib, depth int) error {
	for b.cur < len(b.words) {
		hdr := b.words[b.cur]
		op := pm4.GetSDMAOpcode(hdr)
		sub := pm4.GetSDMASubOp(hdr)

		var name string
		var fields []string
		switch op {
		case pm4.SDMAOpNop:
			name = "NOP"
			fields = make([]string, pm4.GetSDMANopCount(hdr))
		case pm4.SDMAOpCopy:
			l, ok := sdmaCopyLayouts[sub]
			if !ok {
				return p.sdmaUnknown(b, op, sub)
			}
			name, fields = l.name, l.fields
			if sub == pm4.SDMACopyTiledSubWindow {
				if hdr&pm4.SDMATiledDetile != 0 {
					name += " (detile)"
				} else {
					name += " (tile)"
				}
			}
		case pm4.SDMAOpWrite:
			name = "WRITE"
			fields = []string{"DST_ADDR_LO", "DST_ADDR_HI", "COUNT"}
			if b.cur+3 < len(b.words) {
				n := int(b.words[b.cur+3]&0xfffff) + 1
				for i := 0; i < n; i++ {
					fields = append(fields, "DATA")
				}
			}
		default:
			l, ok := sdmaLayouts[op]
			if !ok {
				return p.sdmaUnknown(b, op, sub)
			}
			name, fields = l.name, l.fields
		}

		end := b.cur + 1 + len(fields)
		if end > len(b.words) {
			return p.fail(b, amd.ErrIBOverrun, b.cur, "SDMA %s needs %d dwords, %d left in IB",
				name, 1+len(fields), len(b.words)-b.cur)
		}
		p.packetName(name, false)
		p.count("SDMA " + name)
		b.packets++
		for i, f := range fields {
			v := b.words[b.cur+1+i]
			if f == "" {
				p.out.Linef(pktIndent, "0x%08x", v)
				continue
			}
			p.named(f, v)
		}
		b.cur = end
	}
	return nil
}

func (p *Parser) sdmaUnknown(b *ib, op pm4.SDMAOpcode, sub uint32) error {
	msg := fmt.Sprintf("unknown SDMA opcode 0x%02x sub-opcode 0x%02x", uint8(op), sub)
	p.errorLine("%s at dword %d", msg, b.cur)
	if b.node != nil {
		b.node.AddNode("error: " + msg)
	}
	return icommon.NewErrorWithIdxMsg(amd.ErrSevError, amd.ErrUnknownSDMAOp, b.cur, msg)
}
