package data

import (
	"math"

	"github.com/pkg/errors"

	"github.com/mmp/grib2dec/internal/bitio"
	"github.com/mmp/grib2dec/internal/filter"
)

// Unpack reconstructs floating-point samples from section 7's packed
// byte stream, applying the reference/binary-scale/decimal-scale
// formula and (for template 3) spatial-difference reconstruction, and
// writes into out only the samples the oracle accepts. out must have
// capacity for exactly the filtered point count (oracle's nbI*nbJ); the
// return value is the number of values written, which callers should
// assert equals len(out).
//
// Per spec 4.4's design note, the per-spatial-order reconstruction is
// selected once, ahead of the inner loop, as a spatialReconstructor
// value rather than branching on p.SpatialOrder for every sample; the
// loop calls it through the interface.
func Unpack(r *bitio.Reader, p *Packing, oracle *filter.RowOracle, out []float64) (int, error) {
	ref := p.R * math.Pow(10, float64(-p.D))
	scale := math.Pow(2, float64(p.E)) * math.Pow(10, float64(-p.D))

	var n int
	var err error
	switch p.Template {
	case 0:
		n, err = unpackSimple(r, p, oracle, ref, scale, out)
	default:
		switch p.SpatialOrder {
		case 0:
			n, err = unpackComplex(r, p, oracle, ref, scale, out, order0{})
		case 1:
			n, err = unpackComplex(r, p, oracle, ref, scale, out, &order1{})
		case 2:
			n, err = unpackComplex(r, p, oracle, ref, scale, out, &order2{})
		default:
			return 0, errors.Wrapf(ErrBadSpatialOrder, "order %d", p.SpatialOrder)
		}
	}
	if err != nil {
		return n, err
	}
	if err := r.SectionEnd(); err != nil {
		return n, err
	}
	return n, nil
}

func unpackSimple(r *bitio.Reader, p *Packing, oracle *filter.RowOracle, ref, scale float64, out []float64) (int, error) {
	n := 0
	for i := 0; i < p.NbValues; i++ {
		var x uint64
		if p.SampleBits > 0 {
			v, err := r.Bits(p.SampleBits)
			if err != nil {
				return n, err
			}
			x = v
		}
		value := ref + scale*float64(x)
		if oracle.Accept() {
			if n < len(out) {
				out[n] = value
			}
			n++
		}
	}
	r.BitsEnd()
	return n, nil
}

// spatialReconstructor folds one sample's group-relative integer x into
// the running spatial-difference state and returns the reconstructed
// integer to scale and emit.
type spatialReconstructor interface {
	// next returns the reconstructed integer for sample index; for the
	// first s samples it returns the pre-read h1 (and h2, for order 2)
	// in place of x.
	next(index int, x int64, h1, h2, hmin int64) int64
}

type order0 struct{}

func (order0) next(_ int, x int64, _, _, _ int64) int64 { return x }

type order1 struct {
	prev int64
}

func (o *order1) next(index int, x int64, h1, _, hmin int64) int64 {
	if index == 0 {
		o.prev = h1
		return h1
	}
	v := o.prev + hmin + x
	o.prev = v
	return v
}

type order2 struct {
	prev1, prev2 int64
}

func (o *order2) next(index int, x int64, h1, h2, hmin int64) int64 {
	switch index {
	case 0:
		o.prev2 = h1
		return h1
	case 1:
		o.prev1 = h2
		return h2
	default:
		v := 2*o.prev1 - o.prev2 + hmin + x
		o.prev2 = o.prev1
		o.prev1 = v
		return v
	}
}

func unpackComplex(r *bitio.Reader, p *Packing, oracle *filter.RowOracle, ref, scale float64, out []float64, recon spatialReconstructor) (int, error) {
	var h1, h2, hmin int64
	if p.SpatialOrder >= 1 {
		v, err := r.Bytes(p.ExtraBytes)
		if err != nil {
			return 0, err
		}
		h1 = v
		if p.SpatialOrder == 2 {
			v2, err := r.Bytes(p.ExtraBytes)
			if err != nil {
				return 0, err
			}
			h2 = v2
		}
		vmin, err := r.Bytes(p.ExtraBytes)
		if err != nil {
			return 0, err
		}
		hmin = vmin
	}

	refs := make([]int64, p.NG)
	for i := range refs {
		if p.SampleBits == 0 {
			continue
		}
		v, err := r.Bits(p.SampleBits)
		if err != nil {
			return 0, err
		}
		refs[i] = int64(v)
	}
	r.BitsEnd()

	widths := make([]int, p.NG)
	for i := range widths {
		if p.GroupWidthBits == 0 {
			continue
		}
		v, err := r.Bits(p.GroupWidthBits)
		if err != nil {
			return 0, err
		}
		widths[i] = int(v)
	}
	r.BitsEnd()

	lengths := make([]int, p.NG)
	for i := range lengths {
		if p.ScaledGroupLengthBits == 0 {
			lengths[i] = p.GroupLengthRef
			continue
		}
		v, err := r.Bits(p.ScaledGroupLengthBits)
		if err != nil {
			return 0, err
		}
		lengths[i] = int(v)*p.GroupLengthInc + p.GroupLengthRef
	}
	// LastGroupLength is read off the wire (section 5) but, per the
	// reference decoder, never substituted for the final group's
	// computed length: every group's length comes uniformly from the
	// scaled-length formula above.
	r.BitsEnd()

	n := 0
	index := 0
	for g := 0; g < p.NG; g++ {
		for j := 0; j < lengths[g]; j++ {
			var raw uint64
			if widths[g] > 0 {
				v, err := r.Bits(widths[g])
				if err != nil {
					return n, err
				}
				raw = v
			}
			x := refs[g] + int64(raw)
			xk := recon.next(index, x, h1, h2, hmin)
			value := ref + scale*float64(xk)
			if oracle.Accept() {
				if n < len(out) {
					out[n] = value
				}
				n++
			}
			index++
		}
	}
	r.BitsEnd()
	return n, nil
}
