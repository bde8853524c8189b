package main

import "github.com/thejurists/site-api/cmd/jurists/cmd"

func main() {
	cmd.Execute()
}
