/*
Copyright © 2026 qbtime authors
*/
package main

import "qbtime/cmd"

func main() {
	cmd.Execute()
}
