package main

import "github.com/jsphweid/desmidi/cmd"

func main() {
	cmd.Execute()
}
