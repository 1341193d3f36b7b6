// Package lowerbound computes the pairwise lower bound: the smallest possible
// suite size that could cover every value pair of a model at interaction
// strength 2. It is defined only at strength 2; at any other strength the
// bound is undefined and Compute reports it absent so callers never make a
// minimality claim they cannot support.
package lowerbound
