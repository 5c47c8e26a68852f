package main

import (
	"fmt"
	"log"
)

type PingCmd struct{}

// Run tests the connection by transcribing a short generated payload. A
// failed connection is reported but does not set the exit code.
func (cmd *PingCmd) Run(app *Globals) error {
	if err := app.client.Ping(app.ctx); err != nil {
		log.Printf("connection failed: %v", err)
		return nil
	}
	fmt.Println("Connection successful to", app.Url)
	return nil
}
