// Package date samples placeholder instants from a calendar window ending at
// "now" and renders them through a process-wide cache of formatters.
//
// # Sampling
//
// A Window names a magnitude and a calendar unit, for example 3 months. The
// lower bound is computed with calendar arithmetic (time.AddDate for days,
// weeks, months and years), so "1 month ago" spans 28 to 31 days. Sample
// draws a whole-second offset uniformly from [lower, now]. When the window
// cannot be constructed (negative magnitude, unknown unit, unparsable locale)
// Sample returns now.
//
//	t := date.Sample(random.Default(), date.Window{Magnitude: 20, Unit: date.Year}, time.Now())
//
// # Formatting
//
// Format is one of ISO8601, Relative, Styled, Pattern or Custom. Cache builds
// one Formatter per distinct non-custom Format and reuses it afterwards;
// Formatters returns the process-wide instance.
//
//	s := date.Formatters().Render(t, date.Pattern("EEEE, MMM d yyyy"))
//
// Render never fails: when a formatter cannot be built or cannot render the
// instant it returns the empty string.
package date
