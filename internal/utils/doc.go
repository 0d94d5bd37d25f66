// Package utils holds small helpers shared by the grabber packages:
// filename sanitizing for downloaded files, link list reading,
// header providers for the HTTP transport and a few generic slice functions.
package utils
