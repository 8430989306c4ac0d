// Package nexus exposes an HDF5 (NeXus) file as a pixel.Namespace and
// pixel.DatasetReader.
//
// Files are read with the pure Go HDF5 reader from go-native-netcdf. The
// adapter keeps one group open at a time, matching the single-cursor
// contract of pixel.Namespace:
//
//	f, err := nexus.Open("run.nxs")
//	if err != nil { ... }
//	defer f.Close()
//
//	paths, err := pixel.Discover(f)
//
// Subgroups are reported as pixel.NodeGroup and variables as
// pixel.NodeDataset. Dataset values of any numeric type and rank are
// flattened row-major into []float64 by [Flatten].
package nexus
