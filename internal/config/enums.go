package config

import (
	"fmt"
	"strings"
)

// OrderingKind selects a term ordering (spec §6.3 "ordering selector:
// LPO / KBO / auto").
type OrderingKind string

const (
	OrderingAuto OrderingKind = "auto"
	OrderingLPO  OrderingKind = "lpo"
	OrderingKBO  OrderingKind = "kbo"
)

func (k *OrderingKind) String() string {
	if *k == "" {
		return string(OrderingAuto)
	}
	return string(*k)
}

func (k *OrderingKind) Set(s string) error {
	switch OrderingKind(strings.ToLower(s)) {
	case OrderingAuto, OrderingLPO, OrderingKBO:
		*k = OrderingKind(strings.ToLower(s))
		return nil
	}
	return fmt.Errorf("unknown ordering %q (want auto, lpo, or kbo)", s)
}

// InputFormat selects how input files are parsed (spec §6.3 "input
// format selector (auto / TPTP / LOP)").
type InputFormat string

const (
	InputAuto InputFormat = "auto"
	InputTPTP InputFormat = "tptp"
	InputLOP  InputFormat = "lop"
)

func (f *InputFormat) String() string {
	if *f == "" {
		return string(InputAuto)
	}
	return string(*f)
}

func (f *InputFormat) Set(s string) error {
	switch InputFormat(strings.ToLower(s)) {
	case InputAuto, InputTPTP, InputLOP:
		*f = InputFormat(strings.ToLower(s))
		return nil
	}
	return fmt.Errorf("unknown input format %q (want auto, tptp, or lop)", s)
}

// OutputFormat selects how a proof is rendered (spec §6.3 "output format
// selector"; spec §6.1/§6.2 name TPTP and PCL2 as the two wire syntaxes).
type OutputFormat string

const (
	OutputTPTP OutputFormat = "tptp"
	OutputPCL2 OutputFormat = "pcl2"
)

func (f *OutputFormat) String() string {
	if *f == "" {
		return string(OutputTPTP)
	}
	return string(*f)
}

func (f *OutputFormat) Set(s string) error {
	switch OutputFormat(strings.ToLower(s)) {
	case OutputTPTP, OutputPCL2:
		*f = OutputFormat(strings.ToLower(s))
		return nil
	}
	return fmt.Errorf("unknown output format %q (want tptp or pcl2)", s)
}

// LiteralSelection names a literal selection strategy (spec §6.3
// "literal selection strategy"; spec §4.7's inference rules consult
// whichever strategy is active to restrict which literals may be the
// paramodulation/resolution focus of a clause).
type LiteralSelection string

const (
	SelectNone     LiteralSelection = "none"
	SelectMaximal  LiteralSelection = "maximal"
	SelectFirstNeg LiteralSelection = "first-negative"
	SelectSmallest LiteralSelection = "smallest"
)

func (s *LiteralSelection) String() string {
	if *s == "" {
		return string(SelectNone)
	}
	return string(*s)
}

func (s *LiteralSelection) Set(v string) error {
	switch LiteralSelection(strings.ToLower(v)) {
	case SelectNone, SelectMaximal, SelectFirstNeg, SelectSmallest:
		*s = LiteralSelection(strings.ToLower(v))
		return nil
	}
	return fmt.Errorf("unknown literal selection strategy %q (want none, maximal, first-negative, or smallest)", v)
}
