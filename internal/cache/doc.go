// Package cache provides a small generic LRU cache.
//
// The brush stamper keys it by (hardness, radius, roundness) so that dabs
// of the same size share their mask coefficients instead of recomputing
// the erf evaluations per dab.
//
//	c := cache.New[key, mask.GaussParams](256)
//	p := c.GetOrCreate(k, func() mask.GaussParams { return mask.NewGaussParams(h, r, rd) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
