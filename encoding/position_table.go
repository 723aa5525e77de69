package encoding

import (
	"fmt"

	"github.com/PiRSquared17/glu-genetics/errs"
	"github.com/PiRSquared17/glu-genetics/internal/pool"
)

// EncodePositionTable writes the initial bit offset and the model index of every
// position into buf.
func EncodePositionTable(buf *pool.ByteBuffer, initialOffset int, modelIndex []int) {
	buf.WriteUvarint(uint64(initialOffset)) //nolint:gosec
	for _, idx := range modelIndex {
		buf.WriteUvarint(uint64(idx)) //nolint:gosec
	}
}

// DecodePositionTable decodes a position table for positions positions over a model
// table of models records. The table must fill data exactly.
//
// Returns:
//   - int: the initial bit offset
//   - []int: the model index of every position
//   - error: errs.ErrCorruptPositionTable for truncated data, trailing bytes or a model
//     index out of range
func DecodePositionTable(data []byte, positions, models int) (int, []int, error) {
	d := NewVarStringDecoder(data)

	initialOffset, err := d.ReadInt(1 << 30)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: initial offset: %w", errs.ErrCorruptPositionTable, err)
	}

	if positions > d.Remaining() {
		return 0, nil, fmt.Errorf("%w: %d positions in %d bytes", errs.ErrCorruptPositionTable, positions, d.Remaining())
	}

	modelIndex := make([]int, positions)
	for i := range modelIndex {
		if modelIndex[i], err = d.ReadInt(models - 1); err != nil {
			return 0, nil, fmt.Errorf("%w: position %d: %w", errs.ErrCorruptPositionTable, i, err)
		}
	}

	if d.Remaining() != 0 {
		return 0, nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrCorruptPositionTable, d.Remaining())
	}

	return initialOffset, modelIndex, nil
}
