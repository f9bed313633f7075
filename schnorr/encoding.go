package schnorr

import (
	"github.com/xoloki/jlib-sub001/wire"
)

func (p Proof) MarshalBinary() ([]byte, error) {
	e := wire.NewEncoder()
	e.Point(1, p.G)
	e.Point(2, p.Y)
	e.Scalar(3, p.R)
	e.Point(4, p.T)
	return e.Bytes(), nil
}

func (p *Proof) UnmarshalBinary(data []byte) error {
	var out Proof
	var seen wire.Fields
	d := wire.NewDecoder(data)
	for d.More() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			out.G, err = d.Point()
		case 2:
			out.Y, err = d.Point()
		case 3:
			out.R, err = d.Scalar()
		case 4:
			out.T, err = d.Point()
		default:
			err = d.Unexpected()
		}
		if err != nil {
			return err
		}
		seen.Set(num)
	}
	if err := seen.Require(1, 2, 3, 4); err != nil {
		return err
	}
	*p = out
	return nil
}

func (p DoubleProof) MarshalBinary() ([]byte, error) {
	e := wire.NewEncoder()
	e.Point(1, p.Y)
	e.Point(2, p.U)
	e.Scalar(3, p.S)
	e.Scalar(4, p.T)
	return e.Bytes(), nil
}

func (p *DoubleProof) UnmarshalBinary(data []byte) error {
	var out DoubleProof
	var seen wire.Fields
	d := wire.NewDecoder(data)
	for d.More() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			out.Y, err = d.Point()
		case 2:
			out.U, err = d.Point()
		case 3:
			out.S, err = d.Scalar()
		case 4:
			out.T, err = d.Scalar()
		default:
			err = d.Unexpected()
		}
		if err != nil {
			return err
		}
		seen.Set(num)
	}
	if err := seen.Require(1, 2, 3, 4); err != nil {
		return err
	}
	*p = out
	return nil
}

func (p GeneralProof) MarshalBinary() ([]byte, error) {
	e := wire.NewEncoder()
	e.Point(1, p.Y)
	e.Point(2, p.T)
	e.Scalars(3, p.R)
	return e.Bytes(), nil
}

func (p *GeneralProof) UnmarshalBinary(data []byte) error {
	var out GeneralProof
	var seen wire.Fields
	d := wire.NewDecoder(data)
	for d.More() {
		num, err := d.Next()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			out.Y, err = d.Point()
		case 2:
			out.T, err = d.Point()
		case 3:
			r, rerr := d.Scalar()
			out.R = append(out.R, r)
			err = rerr
		default:
			err = d.Unexpected()
		}
		if err != nil {
			return err
		}
		seen.Set(num)
	}
	if err := seen.Require(1, 2, 3); err != nil {
		return err
	}
	*p = out
	return nil
}
