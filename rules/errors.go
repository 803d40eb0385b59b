// Package rules holds the error taxonomy shared by every rule-checking
// package. Errors carry a stable code for callers and a readable message.
package rules

import (
	"errors"
	"fmt"
)

// Kind separates rule violations from lookups of things that do not exist.
type Kind int

const (
	Validation Kind = iota
	NotFound
)

func (k Kind) String() string {
	if k == NotFound {
		return "not-found"
	}
	return "validation"
}

// Code is a stable, machine-readable rejection reason.
type Code string

// Validation codes.
const (
	CodeInsufficientResources Code = "insufficient-resources"
	CodeVertexOccupied        Code = "vertex-occupied"
	CodeDistanceRule          Code = "distance-rule"
	CodeNotConnected          Code = "not-connected"
	CodeNotYourSettlement     Code = "not-your-settlement"
	CodeNotAdjacent           Code = "not-adjacent"
	CodeEdgeOccupied          Code = "edge-occupied"
	CodeWrongPhase            Code = "wrong-phase"
	CodeNotYourTurn           Code = "not-your-turn"
	CodeGameFinished          Code = "game-finished"
	CodeSetupIncomplete       Code = "setup-incomplete"
	CodeSetupStepDone         Code = "setup-step-done"
	CodeAlreadyRolled         Code = "already-rolled"
	CodeNotRolled             Code = "not-rolled"
	CodeRobberPending         Code = "robber-pending"
	CodeNoRobberMove          Code = "no-robber-move"
	CodeRobberMustMove        Code = "robber-must-move"
	CodeInvalidStealTarget    Code = "invalid-steal-target"
	CodeInvalidTrade          Code = "invalid-trade"
	CodeNoPortAccess          Code = "no-port-access"
	CodeOwnOffer              Code = "own-offer"
	CodeDeckEmpty             Code = "deck-empty"
	CodeCardNotHeld           Code = "card-not-held"
	CodeCardNotPlayable       Code = "card-not-playable"
	CodeInvalidCardData       Code = "invalid-card-data"
	CodeInvalidPlayers        Code = "invalid-players"
	CodeNoPiecesLeft          Code = "no-pieces-left"
	CodeUnknownAction         Code = "unknown-action"
)

// Not-found codes.
const (
	CodeUnknownGame   Code = "unknown-game"
	CodeUnknownPlayer Code = "unknown-player"
	CodeUnknownVertex Code = "unknown-vertex"
	CodeUnknownHex    Code = "unknown-hex"
	CodeUnknownOffer  Code = "unknown-offer"
	CodeUnknownCard   Code = "unknown-card"
)

// Error is a recoverable rejection. It never leaves partial state behind.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any *Error with the same code, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Violation builds a validation error.
func Violation(code Code, format string, args ...any) error {
	return &Error{Kind: Validation, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Missing builds a not-found error.
func Missing(code Code, format string, args ...any) error {
	return &Error{Kind: NotFound, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is.
var (
	ErrInsufficientResources = &Error{Kind: Validation, Code: CodeInsufficientResources}
	ErrVertexOccupied        = &Error{Kind: Validation, Code: CodeVertexOccupied}
	ErrDistanceRule          = &Error{Kind: Validation, Code: CodeDistanceRule}
	ErrNotConnected          = &Error{Kind: Validation, Code: CodeNotConnected}
	ErrNotYourSettlement     = &Error{Kind: Validation, Code: CodeNotYourSettlement}
	ErrNotAdjacent           = &Error{Kind: Validation, Code: CodeNotAdjacent}
	ErrEdgeOccupied          = &Error{Kind: Validation, Code: CodeEdgeOccupied}
	ErrWrongPhase            = &Error{Kind: Validation, Code: CodeWrongPhase}
	ErrNotYourTurn           = &Error{Kind: Validation, Code: CodeNotYourTurn}
	ErrGameFinished          = &Error{Kind: Validation, Code: CodeGameFinished}
	ErrSetupIncomplete       = &Error{Kind: Validation, Code: CodeSetupIncomplete}
	ErrSetupStepDone         = &Error{Kind: Validation, Code: CodeSetupStepDone}
	ErrAlreadyRolled         = &Error{Kind: Validation, Code: CodeAlreadyRolled}
	ErrNotRolled             = &Error{Kind: Validation, Code: CodeNotRolled}
	ErrRobberPending         = &Error{Kind: Validation, Code: CodeRobberPending}
	ErrNoRobberMove          = &Error{Kind: Validation, Code: CodeNoRobberMove}
	ErrRobberMustMove        = &Error{Kind: Validation, Code: CodeRobberMustMove}
	ErrInvalidStealTarget    = &Error{Kind: Validation, Code: CodeInvalidStealTarget}
	ErrInvalidTrade          = &Error{Kind: Validation, Code: CodeInvalidTrade}
	ErrNoPortAccess          = &Error{Kind: Validation, Code: CodeNoPortAccess}
	ErrOwnOffer              = &Error{Kind: Validation, Code: CodeOwnOffer}
	ErrDeckEmpty             = &Error{Kind: Validation, Code: CodeDeckEmpty}
	ErrCardNotHeld           = &Error{Kind: Validation, Code: CodeCardNotHeld}
	ErrCardNotPlayable       = &Error{Kind: Validation, Code: CodeCardNotPlayable}
	ErrInvalidCardData       = &Error{Kind: Validation, Code: CodeInvalidCardData}
	ErrInvalidPlayers        = &Error{Kind: Validation, Code: CodeInvalidPlayers}
	ErrNoPiecesLeft          = &Error{Kind: Validation, Code: CodeNoPiecesLeft}
	ErrUnknownAction         = &Error{Kind: Validation, Code: CodeUnknownAction}

	ErrUnknownGame   = &Error{Kind: NotFound, Code: CodeUnknownGame}
	ErrUnknownPlayer = &Error{Kind: NotFound, Code: CodeUnknownPlayer}
	ErrUnknownVertex = &Error{Kind: NotFound, Code: CodeUnknownVertex}
	ErrUnknownHex    = &Error{Kind: NotFound, Code: CodeUnknownHex}
	ErrUnknownOffer  = &Error{Kind: NotFound, Code: CodeUnknownOffer}
	ErrUnknownCard   = &Error{Kind: NotFound, Code: CodeUnknownCard}
)

// IsValidation reports whether err is a rule violation.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == Validation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == NotFound
}

// CodeOf extracts the code of a rules error, or "" for anything else.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
