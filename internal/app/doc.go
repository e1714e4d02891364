// Package app wires configuration, logging and the front-ends together.
// It decides between one-shot, HTTP and interactive console modes and is
// decoupled from any specific entrypoint.
package app
