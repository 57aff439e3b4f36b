/*
File    : sketch/cmd/sketch/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import "os"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
