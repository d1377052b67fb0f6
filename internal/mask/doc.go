// Package mask rasterizes the soft, antialiased coverage mask of one dab.
//
// Coverage falls off with an error-function smoothstep whose width is set by
// hardness: hardness 1 gives a crisp disc, hardness 0 a broad Gaussian-like
// edge. Roundness squashes the minor axis to make elliptical dabs and the
// dab angle rotates that ellipse.
//
// GaussParams holds the coefficients derived from (hardness, radius,
// roundness). They are computed once per dab and shared by every pixel.
//
// RenderScalar is the reference implementation. Render evaluates the same
// closed form eight pixels at a time on wide.F32x8 rows.
package mask
