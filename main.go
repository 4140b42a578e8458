package main

import "github.com/Cbush039/book-review-app/cmd"

func main() {
	cmd.Execute()
}
