package main

import "github.com/horhof/datafort.network/cmd"

func main() {
	cmd.Execute()
}
