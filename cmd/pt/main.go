package main

import "github.com/seant15/gamify-timesheet/cmd/pt/root"

func main() {
	root.Execute()
}
