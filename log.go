/*
 * log.go, part of goirc.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package irc

import "go.uber.org/zap"

// log is the package-level logger. It defaults to a no-op so importing
// this package doesn't print anything unless the caller opts in with
// SetLogger; library code, unlike a standalone binary, shouldn't assume
// it owns stdout.
var log *zap.Logger = zap.NewNop()

// SetLogger replaces the package-level logger, letting a caller route
// connectivity-inference and back-transformation diagnostics into their
// own zap pipeline.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}
