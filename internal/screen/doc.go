// Package screen holds the per-screen data controller.
//
// A Controller owns the state of exactly one mounted screen: the displayed
// data, the loading and refreshing flags and the last failure reason. It is
// driven by a Source, which performs the fetch and applies the fallback
// policy of the screen's resource, so every screen shares one state machine:
//
//	Idle -> Loading -> Ready -> Refreshing -> Ready
//
// Failures never escape a controller. Whatever the content service does, the
// screen ends up showing server data, compiled-in fallback data or the empty
// shape of its payload type.
//
// Refreshes are not debounced. When fetches overlap, the one that settles
// last determines the displayed data.
package screen
