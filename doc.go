// Package devconsole provides an in-process developer console overlay for
// real-time rendering applications.
//
// # Overview
//
// devconsole is a self-contained widget system that lets a running
// application expose an interactive command prompt, tabbed panels, and
// clickable buttons without pulling in a full UI framework. It owns no
// graphics device and no input device: the host feeds it discrete input
// events and hands it a drawing surface once per frame.
//
// # Quick Start
//
//	console := devconsole.New(
//	    devconsole.WithHost(host),
//	    devconsole.WithExecutor(interp),
//	)
//	console.EnableInput()
//
//	// Per frame, after the game view:
//	console.Draw(surface)
//
//	// Input routing (host event loop):
//	if console.HandleKeyPress(devconsole.KeyBackquote) { return }
//
// # Coordinate System
//
// All coordinates are virtual screen units with the origin at the
// bottom-left and Y increasing upward, matching overlay render passes.
// The console slides down from the top of the screen; the "bottom"
// boundary separates the console panel from the game view beneath it.
//
// # Ownership
//
// The console and everything it owns are confined to a single logic
// context. All mutating calls must come from that context; see
// [WithOwnerCheck]. Command execution happens elsewhere (see [Executor])
// and results come back through [Console.Print].
package devconsole
