// Package raycard computes a cursor-reactive glow and drop shadow for a card.
//
// The package has three layers:
//
//   - ComputeEffect and EffectState.Next are pure functions from a pointer
//     sample, the card's bounding rect and its Config to an EffectState.
//   - Tracker binds a card to a live EventSource, re-measures the card on
//     every sample and publishes the state only when it changes. Dispatcher
//     is an in-process EventSource for hosts that own their event loop.
//   - IsValidCSSColor, IsValidBorderRadius and ClampNumber sanitise the
//     free-form configuration before it can reach generated style text.
//
// Rendering is left to the caller. Style produces the CSS values a web
// renderer would apply.
package raycard
