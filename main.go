/*
Copyright © 2025 licenseguard authors
*/
package main

import "github.com/licenseguard/licenseguard/cmd"

func main() {
	cmd.Execute()
}
