// Package limits centralizes technical capacity bounds for power system
// components, replacing magic numbers and infinities with configurable,
// technically justified ceilings.
//
// A Table maps component categories and carrier names to finite bounds.
// The Resolver walks a documented fallback chain (exact match, partial
// match, category default, system-wide proxy, hard constant) so that any
// carrier name resolves to a finite non-negative bound without ever
// failing. The sanitizer methods strip positive infinities from
// externally supplied values for the benefit of solvers and reporting.
package limits
