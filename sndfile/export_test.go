// SPDX-License-Identifier: EPL-2.0

package sndfile

// Refills reports how many times the decode window was (re)filled.
func (s *Sound) Refills() int { return s.refills }
