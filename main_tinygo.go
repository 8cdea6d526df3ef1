//go:build tinygo

package main

import (
	"wirecube/app"
	"wirecube/hal"
)

func main() {
	app.Run(hal.New())
}
