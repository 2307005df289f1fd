// Package arrayops implements in-place transforms over slices: reversal,
// rotation (naive and three-reversal), three-way partitioning and
// move-zeros-to-end. Every function works in O(1) extra space.
package arrayops
