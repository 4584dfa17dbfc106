// Package utvpi computes UTVPI bounds for pairs of variables
// (findBounds) and single-variable bounds (simplifySingleVar),
// including the rotated-basis trick that reduces ±x_i ± x_j bounds to
// single-variable bounds on s = x_i+x_j and t = x_i-x_j.
package utvpi
