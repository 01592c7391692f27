// Package main is the entry point for the premm CLI.
package main

import "github.com/LinnaX7/PReMM/cmd"

func main() {
	cmd.Execute()
}
