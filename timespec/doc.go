// SPDX-License-Identifier: EPL-2.0

// Package timespec converts heterogeneous time representations into
// canonical floating-point seconds.
//
// Every time-taking operation in podmix funnels its arguments through
// Seconds, so callers can pass raw seconds, an HMS triple, or a clock
// string interchangeably:
//
//	timespec.Seconds(90)                     // 90
//	timespec.Seconds(timespec.HMS{0, 1, 30}) // 90
//	timespec.Seconds("0:1:30")               // 90
//	timespec.Seconds("00:01:30.500")         // 90.5
//
// Triples carry overflow: HMS{0, 0, 90} is 90 seconds, the same as
// HMS{0, 1, 30}. Negative components subtract, so HMS{1, -30, 0} is
// half an hour.
//
// Format is the inverse, producing zero-padded "HH:MM:SS.sss".
package timespec
