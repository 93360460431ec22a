package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/omnidome/panoview/dome"
)

// jsBridge forwards dome commands to a host-provided `domeBridge` object.
// The host resolves each sendCommand promise with a JSON result.
type jsBridge struct {
	v js.Value
}

// detectDomeBridge returns the host bridge, or nil when the viewer runs
// standalone and the adapter should simulate locally.
func detectDomeBridge() dome.Bridge {
	v := js.Global().Get("domeBridge")
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	return &jsBridge{v: v}
}

func (b *jsBridge) SendCommand(ctx context.Context, cmd dome.Command) (dome.Result, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return dome.Result{}, fmt.Errorf("encode dome command: %w", err)
	}

	type outcome struct {
		res dome.Result
		err error
	}
	ch := make(chan outcome, 1)

	// The promise settles at most once; whichever callback fires releases
	// both so the wasm callback registry does not grow per command. The
	// buffered channel keeps the send from blocking when the caller already
	// gave up on the context.
	var onResolve, onReject js.Func
	release := func() {
		onResolve.Release()
		onReject.Release()
	}
	onResolve = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer release()
		res := dome.Result{ID: cmd.ID, Status: "ok"}
		if len(args) > 0 && args[0].Type() == js.TypeString {
			if err := json.Unmarshal([]byte(args[0].String()), &res); err != nil {
				ch <- outcome{err: fmt.Errorf("decode dome result: %w", err)}
				return nil
			}
		}
		ch <- outcome{res: res}
		return nil
	})
	onReject = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer release()
		ch <- outcome{err: errors.New("dome command rejected")}
		return nil
	})
	b.v.Call("sendCommand", string(payload)).Call("then", onResolve, onReject)

	select {
	case o := <-ch:
		return o.res, o.err
	case <-ctx.Done():
		return dome.Result{}, ctx.Err()
	}
}
