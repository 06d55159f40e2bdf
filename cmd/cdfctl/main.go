// Command cdfctl inspects and validates NetCDF classic/64-bit-offset files.
package main

func main() {
	execute()
}
