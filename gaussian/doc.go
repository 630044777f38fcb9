// Package gaussian generates normally distributed samples and the curves used
// to compare them against the normal density.
//
// Sampler draws standard normal variates with the Box-Muller transform, Curve
// samples the scaled density on a grid, and Histogram buckets sampled values
// into weighted points. Curves and histograms are returned as regression.Point
// slices so they can be fed to the regression package or encoded with dataset.
package gaussian
