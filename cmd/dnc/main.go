// The dnc command trains and inspects memory-augmented networks from the
// command line.
package main

func main() {
	Execute()
}
