package groth

import (
	"fmt"

	"github.com/xoloki/jlib-sub001/curve"
	"github.com/xoloki/jlib-sub001/wire"
)

func (p BinaryProof) MarshalBinary() ([]byte, error) {
	e := wire.NewEncoder()
	e.Point(1, p.C.Point)
	e.Point(2, p.A)
	e.Point(3, p.B)
	e.Scalar(4, p.F)
	e.Scalar(5, p.ZA)
	e.Scalar(6, p.ZB)
	return e.Bytes(), nil
}

func (p *BinaryProof) UnmarshalBinary(data []byte) error {
	var out BinaryProof
	var seen wire.Fields
	d := wire.NewDecoder(data)
	for d.More() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			out.C, err = d.Commitment()
		case 2:
			out.A, err = d.Point()
		case 3:
			out.B, err = d.Point()
		case 4:
			out.F, err = d.Scalar()
		case 5:
			out.ZA, err = d.Scalar()
		case 6:
			out.ZB, err = d.Scalar()
		default:
			err = d.Unexpected()
		}
		if err != nil {
			return err
		}
		seen.Set(num)
	}
	if err := seen.Require(1, 2, 3, 4, 5, 6); err != nil {
		return err
	}
	*p = out
	return nil
}

func (p ZeroProof) MarshalBinary() ([]byte, error) {
	e := wire.NewEncoder()
	e.Commitments(1, p.Commitments)
	e.Points(2, p.CL)
	e.Points(3, p.CA)
	e.Points(4, p.CB)
	e.Points(5, p.CD)
	e.Scalars(6, p.F)
	e.Scalars(7, p.ZA)
	e.Scalars(8, p.ZB)
	e.Scalar(9, p.ZD)
	e.Uint64(10, uint64(len(p.Commitments)))
	return e.Bytes(), nil
}

func (p *ZeroProof) UnmarshalBinary(data []byte) error {
	var out ZeroProof
	var seen wire.Fields
	var size uint64
	d := wire.NewDecoder(data)
	for d.More() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		var pt curve.Point
		var s curve.Scalar
		switch num {
		case 1:
			var c curve.Commitment
			c, err = d.Commitment()
			out.Commitments = append(out.Commitments, c)
		case 2, 3, 4, 5:
			pt, err = d.Point()
			switch num {
			case 2:
				out.CL = append(out.CL, pt)
			case 3:
				out.CA = append(out.CA, pt)
			case 4:
				out.CB = append(out.CB, pt)
			case 5:
				out.CD = append(out.CD, pt)
			}
		case 6, 7, 8:
			s, err = d.Scalar()
			switch num {
			case 6:
				out.F = append(out.F, s)
			case 7:
				out.ZA = append(out.ZA, s)
			case 8:
				out.ZB = append(out.ZB, s)
			}
		case 9:
			out.ZD, err = d.Scalar()
		case 10:
			size, err = d.Uint64()
		default:
			err = d.Unexpected()
		}
		if err != nil {
			return err
		}
		seen.Set(num)
	}
	if err := seen.Require(1, 9, 10); err != nil {
		return err
	}
	if size != uint64(len(out.Commitments)) {
		return fmt.Errorf("%w: %d, decoded %d", ErrRingSize, size, len(out.Commitments))
	}
	*p = out
	return nil
}
