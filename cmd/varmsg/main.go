// Package main is the entry point for the varmsg CLI.
package main

func main() {
	Execute()
}
