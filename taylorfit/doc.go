// Package taylorfit recovers Taylor coefficients of a univariate model
// from noisy samples by linear least squares.
//
// 🚀 Why a separate package?
//
//	dstruct differentiates functions you can compute exactly. When the
//	only access to a function is a cloud of (x, y) measurements, the
//	local derivatives must be estimated instead: taylorfit fits the
//	polynomial Σ cₖ·(x − center)ᵏ through the samples and hands back the
//	array [c₀·0!, c₁·1!, …] — a ready-made univariate derivative
//	structure. The output of Fit plugs straight into dstruct.Compose,
//	dstruct.Taylor and friends.
//
// ✨ Key features:
//   - QR-based least squares on the Vandermonde design matrix, via
//     gonum.org/v1/gonum/mat; rank deficiency surfaces as ErrSingularFit
//   - Output scaled by k! so ds[k] estimates the k-th derivative at the
//     expansion center, not the bare polynomial coefficient
//   - Predict and RMSE helpers evaluate the fitted model through the
//     same Taylor machinery that produced it
//
// ⚙️ Usage:
//
//	ds, err := taylorfit.Fit(xs, ys, 1.0, 3) // cubic model about x = 1
//	if err != nil { ... }
//	y0, _ := taylorfit.Predict(ds, 1.0, 1.2)
//
// Degrees above 20 fit fine but cannot be evaluated with Predict: the
// factorial table behind Taylor evaluation stops where float64 stops
// being exact.
package taylorfit
