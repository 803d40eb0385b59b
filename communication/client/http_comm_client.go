package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"colonisation/communication/server"
	"colonisation/game"
	"colonisation/gamemaster"
	"colonisation/rules"
)

// ClientCommunicator talks to a game server over HTTP. Rejections come back
// as *rules.Error values so callers can match them with errors.Is.
type ClientCommunicator struct {
	serverURL string
	http      *http.Client
}

func NewClientCommunicator(serverURL string) *ClientCommunicator {
	return &ClientCommunicator{
		serverURL: serverURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (cc *ClientCommunicator) Create(ctx context.Context, seats []game.Seat) (string, error) {
	var res server.CreateResponse
	if err := cc.call(ctx, http.MethodPost, "/games", server.CreateRequest{Players: seats}, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

func (cc *ClientCommunicator) Do(ctx context.Context, id string, a gamemaster.Action) (gamemaster.Result, error) {
	var res gamemaster.Result
	if err := cc.call(ctx, http.MethodPost, "/games/"+url.PathEscape(id)+"/actions", a, &res); err != nil {
		return gamemaster.Result{}, err
	}
	return res, nil
}

func (cc *ClientCommunicator) State(ctx context.Context, id string) (game.State, error) {
	var s game.State
	if err := cc.call(ctx, http.MethodGet, "/games/"+url.PathEscape(id), nil, &s); err != nil {
		return game.State{}, err
	}
	return s, nil
}

func (cc *ClientCommunicator) Winner(ctx context.Context, id string) (int, bool, error) {
	var res server.WinnerResponse
	if err := cc.call(ctx, http.MethodGet, "/games/"+url.PathEscape(id)+"/winner", nil, &res); err != nil {
		return game.NoOwner, false, err
	}
	return res.Winner, res.Finished, nil
}

func (cc *ClientCommunicator) call(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, cc.serverURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := cc.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var e server.ErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return &rules.Error{Kind: rules.Validation, Code: rules.Code(e.Code), Message: e.Message}
	case http.StatusNotFound:
		return &rules.Error{Kind: rules.NotFound, Code: rules.Code(e.Code), Message: e.Message}
	}
	return fmt.Errorf("server returned %s: %s", resp.Status, e.Code)
}
