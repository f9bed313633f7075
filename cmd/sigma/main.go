package main

import (
	"encoding"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xoloki/jlib-sub001/curve"
	"github.com/xoloki/jlib-sub001/groth"
	"github.com/xoloki/jlib-sub001/schnorr"
)

var errRejected = errors.New("proof rejected")

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, logger); err != nil {
		logger.Error("sigma failed", "protocol", cfg.Protocol, "error", err)
		os.Exit(1)
	}
}

type config struct {
	Protocol string
	N        int
	Ring     int
	Index    int
	Value    uint64
	Hash     string
	Verbose  bool
}

func parseConfig(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("sigma", flag.ContinueOnError)
	fs.StringVar(&cfg.Protocol, "protocol", "schnorr", "schnorr, double, general, binary or zero")
	fs.IntVar(&cfg.N, "n", 3, "number of secrets for the general proof")
	fs.IntVar(&cfg.Ring, "ring", 5, "number of commitments for the zero proof")
	fs.IntVar(&cfg.Index, "index", 0, "position of the zero commitment")
	fs.Uint64Var(&cfg.Value, "value", 1, "committed value for the binary proof")
	fs.StringVar(&cfg.Hash, "hash", "blake2b", "generator chain hash for the general proof: blake2b or sha3")
	fs.BoolVar(&cfg.Verbose, "v", false, "log encoded proofs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if _, err := cfg.hasher(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) hasher() (curve.Hasher, error) {
	switch c.Hash {
	case "blake2b":
		return curve.Blake2b{}, nil
	case "sha3":
		return curve.SHA3{}, nil
	}
	return nil, fmt.Errorf("unknown hash %q", c.Hash)
}

func run(cfg *config, logger *slog.Logger) error {
	var proof encoding.BinaryMarshaler
	var ok bool

	switch cfg.Protocol {
	case "schnorr":
		x := curve.RandomScalar()
		p := schnorr.ProveBase(curve.Base().Mul(x), x)
		proof, ok = p, schnorr.Verify(p)
	case "double":
		s, t := curve.RandomScalar(), curve.RandomScalar()
		p := schnorr.ProveDouble(curve.Commit(s, t).Point, s, t)
		proof, ok = p, schnorr.VerifyDouble(p)
	case "general":
		h, _ := cfg.hasher()
		g, err := schnorr.NewGeneralFromChain(cfg.N, curve.NewGeneratorChain(curve.G(), h))
		if err != nil {
			return err
		}
		x := make([]curve.Scalar, cfg.N)
		for i := range x {
			x[i] = curve.RandomScalar()
		}
		y, err := g.Commit(x)
		if err != nil {
			return err
		}
		p, err := g.Prove(y, x)
		if err != nil {
			return err
		}
		proof, ok = p, g.Verify(p)
	case "binary":
		p := groth.ProveBinary(curve.ScalarFromUint64(cfg.Value), curve.RandomScalar())
		proof, ok = p, groth.VerifyBinary(p)
	case "zero":
		blind := curve.RandomScalar()
		if cfg.Ring < 1 {
			return fmt.Errorf("ring size %d", cfg.Ring)
		}
		cs := make([]curve.Commitment, cfg.Ring)
		for i := range cs {
			cs[i] = curve.Commit(curve.RandomScalar(), curve.RandomScalar())
		}
		if cfg.Index >= 0 && cfg.Index < len(cs) {
			cs[cfg.Index] = curve.Commit(curve.ScalarZero(), blind)
		}
		p, err := groth.ProveZero(cs, cfg.Index, blind)
		if err != nil {
			return err
		}
		proof, ok = p, groth.VerifyZero(p)
	default:
		return fmt.Errorf("unknown protocol %q", cfg.Protocol)
	}

	data, err := proof.MarshalBinary()
	if err != nil {
		return err
	}
	logger.Debug("proof", "bytes", hex.EncodeToString(data))
	logger.Info("verified", "protocol", cfg.Protocol, "size", len(data), "ok", ok)
	if !ok {
		return errRejected
	}
	return nil
}
