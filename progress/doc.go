// Package progress invokes an optional caller-supplied callback at
// controlled iteration points during a hill-climbing run (spec §4.6
// "ProgressTracker").
//
// What
//
//   - Tracker captures a start timestamp at construction and reports
//     elapsed wall-clock time on each report; the best score it reports is
//     the monotonic maximum of every score passed to Update, not merely the
//     most recent one.
//   - Reporting happens at iteration 1 and every multiple of 100 (spec §4.6
//     "Callback is invoked at iteration 1 and every multiple of 100").
//   - There is no logger here (see SPEC_FULL.md's "Logging posture"):
//     the callback is the only narration channel, and a callback panic is
//     caught and swallowed so a misbehaving caller can never abort an
//     optimization run in progress.
package progress
