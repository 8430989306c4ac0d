// Command diagnose inspects a NeXus/HDF5 file: it lists the discovered
// tree, the banks bound by an instrument description, and the geometry and
// calibration values resolved for individual pixels.
//
// Usage:
//
//	diagnose tree run.nxs
//	diagnose banks run.nxs -c instrument.yaml
//	diagnose resolve run.nxs -c instrument.yaml "(bank1, (3, 7))"
//	diagnose dump run.nxs -c instrument.yaml --bank bank1 --attribute efficiency --ni 8 --nj 128
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
