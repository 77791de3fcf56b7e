// Package metric reduces a build.Stats to a single comparable score (spec
// §4.4 "Metric"). Three modes are supported: DPS, EHP, and a baseline-
// normalized BALANCED blend of both.
//
// What
//
//   - Kind is a small closed enum with an exhaustive switch dispatch
//     (grounded on lvlath/core's mode-enum pattern, e.g. core.MSTKruskal /
//     core.MSTPrim in prim_kruskal), rather than a string tag compared
//     ad hoc at every call site.
//   - BaselineContext caches the baseline evaluation once per run so the
//     balanced metric does not recompute it on every neighbor (spec §9
//     "Metric baseline caching").
//   - Score is pure, deterministic, and total: it never errors. Callers
//     that cannot obtain a Stats at all substitute math.Inf(-1) themselves
//     (spec §4.4 "On evaluator failure, the caller substitutes a sentinel
//     score of minus infinity").
package metric
