// Package guard decides whether a gated operation may proceed for the
// current auth snapshot. It is a pure read: navigation and messaging side
// effects stay at the call site.
package guard

import (
	"xiaoyuan-cli/auth"
	shared "xiaoyuan-cli/shared"
)

type Requirement int

const (
	Public Requirement = iota
	RequiresUser
	// RequiresVerified implies RequiresUser
	RequiresVerified
)

type DecisionKind int

const (
	Allow DecisionKind = iota
	// still bootstrapping -- show a pending indicator, don't redirect yet
	Pending
	Redirect
)

type Target string

const (
	TargetSignIn        Target = "sign-in"
	TargetVerifyStudent Target = "verify"
)

type Decision struct {
	Kind   DecisionKind
	Target Target
}

// Snapshot is the auth state a decision is made against. Taking it by value
// keeps Check deterministic and free of session reads mid-decision.
type Snapshot struct {
	State auth.State
	User  *shared.User
}

func CurrentSnapshot() Snapshot {
	return Snapshot{
		State: auth.GetState(),
		User:  auth.GetUser(),
	}
}

func Check(snap Snapshot, req Requirement) Decision {
	if req == Public {
		return Decision{Kind: Allow}
	}

	if snap.State == auth.StateBootstrapping {
		return Decision{Kind: Pending}
	}

	if snap.State != auth.StateAuthenticated || snap.User == nil {
		return Decision{Kind: Redirect, Target: TargetSignIn}
	}

	if req == RequiresVerified && !snap.User.IsVerified {
		return Decision{Kind: Redirect, Target: TargetVerifyStudent}
	}

	return Decision{Kind: Allow}
}
