// Package savgol provides Savitzky-Golay smoothing for short, noisy series.
//
// A Savitzky-Golay smoother fits a low-order polynomial by least squares to
// each sliding window of the input and evaluates the fit at the window
// centre. For a fixed window and order this reduces to a convolution with a
// symmetric coefficient set, which [Coefficients] designs and caches.
//
// [Smooth] is the one-shot entry point. It forces the window to be odd,
// extends both ends of the input by window/2 samples using reflect padding,
// filters, and trims the padding again, so the output always has the same
// length as the input. Inputs shorter than the window are returned unchanged.
//
//	y := savgol.Smooth(scores, savgol.DefaultWindow)
//
// For repeated use with validated parameters, construct a [Smoother]:
//
//	s, err := savgol.New(15, savgol.WithOrder(3))
//	y := s.Process(scores)
//
// [Analyze] reports the frequency-domain behaviour of a coefficient set
// (DC gain, noise gain, -3 dB cutoff, first null).
package savgol
