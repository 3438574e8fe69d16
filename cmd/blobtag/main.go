// Command blobtag tags file content and finds files by tag.
package main

import "github.com/mesh-intelligence/blobtag/internal/cli"

func main() {
	cli.Execute()
}
