package engine

import (
	"colonisation/communication/client"
	"colonisation/game"
	"colonisation/player"
)

// RemoteEngine plays the bots against a game server at serverURL.
func RemoteEngine(serverURL string, seats []game.Seat, policies []player.Policy, opts ...Option) *LocalRunner {
	return LocalEngine(seats, policies, client.NewClientCommunicator(serverURL), opts...)
}
