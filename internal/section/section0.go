package section

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
)

var gribMagic = []byte("GRIB")

// parseSection0 reads the 16-byte indicator section: "GRIB" magic,
// reserved octets, discipline, edition and overall message length. It
// is read directly off the raw stream rather than through
// SectionBegin/SectionEnd, since the indicator section has no
// length-prefix-plus-id framing of its own.
func parseSection0(r *bitio.Reader, msg *Message) error {
	magic, err := r.ReadRaw(4)
	if err != nil {
		return err
	}
	if !bytes.Equal(magic, gribMagic) {
		return errors.Wrapf(ErrNotGrib, "magic %q", magic)
	}

	// Two reserved octets, then discipline.
	if _, err := r.ReadRaw(2); err != nil {
		return err
	}
	disciplineB, err := r.ReadRaw(1)
	if err != nil {
		return err
	}
	discipline := disciplineB[0]
	editionB, err := r.ReadRaw(1)
	if err != nil {
		return err
	}
	edition := editionB[0]
	if edition != 2 {
		return errors.Wrapf(ErrUnsupportedEdition, "edition %d", edition)
	}

	lenB, err := r.ReadRaw(8)
	if err != nil {
		return err
	}
	var length uint64
	for _, c := range lenB {
		length = length<<8 | uint64(c)
	}

	msg.Discipline = int(discipline)
	msg.Len = length
	msg.LenRead = 16
	return nil
}
