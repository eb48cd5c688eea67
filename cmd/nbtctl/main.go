// Command nbtctl inspects and edits named binary tag files.
package main

func main() {
	execute()
}
