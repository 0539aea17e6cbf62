package checkignore

import (
	"github.com/pst966/git/pkg/exclude"
)

// OutcomeKind tags the evaluation result for one path.
type OutcomeKind int

const (
	// NoRuleMatched means the resolver was consulted and found nothing.
	NoRuleMatched OutcomeKind = iota
	// RuleMatched means the resolver returned the highest-priority rule.
	RuleMatched
	// TrackedNoRuleConsulted means the path names a tracked entry, so no
	// rule was consulted at all.
	TrackedNoRuleConsulted
)

// Outcome is the evaluation result for one path. Exactly one outcome is
// produced per input. Tracked and no-rule outcomes render identically
// but stay distinguishable.
type Outcome struct {
	Kind OutcomeKind
	// Rule is set exactly when Kind is RuleMatched.
	Rule *exclude.MatchedRule
}

// Ignored reports whether the outcome counts toward the ignored total.
func (o Outcome) Ignored() bool {
	return o.Kind == RuleMatched
}

func trackedOutcome() Outcome {
	return Outcome{Kind: TrackedNoRuleConsulted}
}

func noRuleOutcome() Outcome {
	return Outcome{Kind: NoRuleMatched}
}

func ruleOutcome(rule *exclude.MatchedRule) Outcome {
	return Outcome{Kind: RuleMatched, Rule: rule}
}
