// Package trading validates and executes bank, port and player-to-player
// resource exchanges. It holds no state beyond the hands passed in: a trade
// either applies in full or leaves every hand untouched.
package trading

import (
	"colonisation/resources"
	"colonisation/rules"
)

// BankRatio is the minimum give amount for a trade with the bank.
const BankRatio = 4

// PortKind distinguishes generic 3:1 ports from resource-bound 2:1 ports.
type PortKind string

const (
	GenericPort  PortKind = "generic"
	ResourcePort PortKind = "resource"
)

// Port is a trade descriptor attached to a coastal vertex.
type Port struct {
	Kind     PortKind           `json:"kind"`
	Resource resources.Resource `json:"resource,omitempty"`
	Ratio    int                `json:"ratio"`
}

// Generic returns a 3:1 port accepting any resource.
func Generic() Port {
	return Port{Kind: GenericPort, Ratio: 3}
}

// ForResource returns a 2:1 port bound to r.
func ForResource(r resources.Resource) Port {
	return Port{Kind: ResourcePort, Resource: r, Ratio: 2}
}

// StandardPorts returns the nine port descriptors of a board: one 2:1 port
// per resource and four generic 3:1 ports.
func StandardPorts() []Port {
	ports := make([]Port, 0, len(resources.All)+4)
	for _, r := range resources.All {
		ports = append(ports, ForResource(r))
	}
	for i := 0; i < 4; i++ {
		ports = append(ports, Generic())
	}
	return ports
}

func (p Port) String() string {
	if p.Kind == GenericPort {
		return "generic 3:1"
	}
	return string(p.Resource) + " 2:1"
}

// Bank trades giveAmount units of give for takeAmount units of take with the
// bank. The take amount must be exactly 1 and the give amount at least
// BankRatio; giving more than BankRatio is accepted and still yields one unit.
func Bank(hand resources.Hand, give resources.Resource, giveAmount int, take resources.Resource, takeAmount int) error {
	return exchange(hand, give, giveAmount, take, takeAmount, BankRatio, "bank")
}

// WithPort trades through port. Generic ports need at least 3 of any single
// resource, resource ports need at least 2 of their bound resource.
func WithPort(hand resources.Hand, port Port, give resources.Resource, giveAmount int, take resources.Resource, takeAmount int) error {
	if port.Kind == ResourcePort && give != port.Resource {
		return rules.Violation(rules.CodeInvalidTrade, "%s port only accepts %s, got %s", port.Resource, port.Resource, give)
	}
	return exchange(hand, give, giveAmount, take, takeAmount, port.Ratio, port.String()+" port")
}

func exchange(hand resources.Hand, give resources.Resource, giveAmount int, take resources.Resource, takeAmount int, ratio int, via string) error {
	if !give.Valid() || !take.Valid() {
		return rules.Violation(rules.CodeInvalidTrade, "cannot trade %q for %q: unknown resource", give, take)
	}
	if give == take {
		return rules.Violation(rules.CodeInvalidTrade, "cannot trade %s for itself", give)
	}
	if takeAmount != 1 || giveAmount < ratio {
		return rules.Violation(rules.CodeInvalidTrade, "%s trades at %d:1, got %d:%d", via, ratio, giveAmount, takeAmount)
	}
	if hand[give] < giveAmount {
		return rules.Violation(rules.CodeInsufficientResources, "need %d %s, have %d", giveAmount, give, hand[give])
	}

	hand[give] -= giveAmount
	hand[take] += takeAmount
	return nil
}
