package clause

// InferenceKind names the rule that produced a clause (spec §4.7, §6.1
// PCL2 justification operators like paramod/factor/initial).
type InferenceKind string

const (
	InferenceInitial          InferenceKind = "initial"
	InferenceParamod          InferenceKind = "paramod"
	InferenceEqRes            InferenceKind = "eq_res"
	InferenceEqFactor         InferenceKind = "eq_factor"
	InferenceRewrite          InferenceKind = "rewrite"
	InferenceSubsumption      InferenceKind = "subsumption"
	InferenceSimplifyReflect  InferenceKind = "sr"
	InferenceTautologyDeleted InferenceKind = "tautology"
	InferenceACNormalize      InferenceKind = "ac_norm"
)

// Derivation is the immutable derivation link recorded once on a clause
// (spec §3 "derivation link (inference kind + up to two parents + side
// info)"). One direction only (parent from child) per the Design Notes
// (spec §9 "Cyclic parent pointers in clauses") — the proof package
// reconstructs the inverse (children-of) on demand when walking the DAG.
type Derivation struct {
	Kind    InferenceKind
	Parents []*Clause // at most two for generating inferences; may include simplifier witnesses
	Extra   string    // e.g. the witness substitution or demodulator description, for PCL2 rendering
}
