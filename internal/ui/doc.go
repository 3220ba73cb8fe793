// Package ui is the Bubble Tea terminal browser for the workout catalog.
//
// It hosts two routes mirroring the web client's address bar: the workout list
// at "/" driven by a browse.Controller, and a single workout at "/workout/{id}".
package ui
